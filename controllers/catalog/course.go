package controllers

import (
	"prepcourse/database"
	"prepcourse/middleware"
	"prepcourse/services"

	"github.com/gofiber/fiber/v2"
)

func CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(services.CourseInput)

	course, err := database.Database.Services.CreateCourse(c.UserContext(), reqData)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func GetAllCourses(c *fiber.Ctx) error {
	courses, err := database.Database.Services.ListCourses(c.UserContext())
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

func GetCourse(c *fiber.Ctx) error {
	course, err := database.Database.Services.GetCourse(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(services.CourseInput)

	course, err := database.Database.Services.UpdateCourse(c.UserContext(), c.Params("id"), reqData)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func DeleteCourse(c *fiber.Ctx) error {
	if err := database.Database.Services.DeleteCourse(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
