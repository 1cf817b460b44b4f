package controllers

import (
	"prepcourse/database"
	"prepcourse/middleware"
	"prepcourse/services"

	"github.com/gofiber/fiber/v2"
)

func CreateStudents(c *fiber.Ctx) error {
	reqData := c.Locals("validatedStudents").([]services.StudentInput)

	students, err := database.Database.Services.CreateStudents(c.UserContext(), reqData)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Students created successfully!", students)
}

// GetAllStudents lists active students; ?all=true includes soft-deleted ones.
func GetAllStudents(c *fiber.Ctx) error {
	students, err := database.Database.Services.ListStudents(c.UserContext(), c.QueryBool("all", false))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", students)
}

func GetStudent(c *fiber.Ctx) error {
	student, err := database.Database.Services.GetStudent(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student fetched successfully!", student)
}

func UpdateStudent(c *fiber.Ctx) error {
	reqData := c.Locals("validatedStudentUpdate").(services.StudentUpdate)

	student, err := database.Database.Services.UpdateStudent(c.UserContext(), c.Params("id"), reqData)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student updated successfully!", student)
}

func ChangeStudentPassword(c *fiber.Ctx) error {
	password := c.Locals("validatedPassword").(string)

	if err := database.Database.Services.ChangeStudentPassword(c.UserContext(), c.Params("id"), password); err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password updated successfully!", nil)
}

func DeleteStudent(c *fiber.Ctx) error {
	student, err := database.Database.Services.DeleteStudent(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student deleted successfully!", student)
}

func AddPurchasedCourse(c *fiber.Ctx) error {
	courseID := c.Locals("validatedCourseId").(string)

	student, err := database.Database.Services.AddPurchasedCourse(c.UserContext(), c.Params("id"), courseID)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course added to student successfully!", student)
}

func RemovePurchasedCourse(c *fiber.Ctx) error {
	courseID := c.Locals("validatedCourseId").(string)

	student, err := database.Database.Services.RemovePurchasedCourse(c.UserContext(), c.Params("id"), courseID)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course removed from student successfully!", student)
}
