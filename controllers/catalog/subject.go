package controllers

import (
	"prepcourse/database"
	"prepcourse/middleware"
	"prepcourse/services"

	"github.com/gofiber/fiber/v2"
)

func CreateSubject(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSubject").(services.SubjectInput)

	subject, err := database.Database.Services.CreateSubject(c.UserContext(), reqData)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subject created successfully!", subject)
}

func GetAllSubjects(c *fiber.Ctx) error {
	subjects, err := database.Database.Services.ListSubjects(c.UserContext(), nil)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched successfully!", subjects)
}

func GetSubjectsByCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	subjects, err := database.Database.Services.ListSubjects(c.UserContext(), &courseID)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched successfully!", subjects)
}

func GetSubject(c *fiber.Ctx) error {
	subject, err := database.Database.Services.GetSubject(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject fetched successfully!", subject)
}

func UpdateSubject(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSubject").(services.SubjectInput)

	subject, err := database.Database.Services.UpdateSubject(c.UserContext(), c.Params("id"), reqData)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject updated successfully!", subject)
}

func DeleteSubject(c *fiber.Ctx) error {
	if err := database.Database.Services.DeleteSubject(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject deleted successfully!", nil)
}
