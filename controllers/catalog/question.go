package controllers

import (
	"prepcourse/database"
	"prepcourse/middleware"
	"prepcourse/services"

	"github.com/gofiber/fiber/v2"
)

func CreateQuestion(c *fiber.Ctx) error {
	reqData := c.Locals("validatedQuestion").(services.QuestionInput)

	question, err := database.Database.Services.CreateQuestion(c.UserContext(), reqData)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

func GetQuestionsByTopic(c *fiber.Ctx) error {
	questions, err := database.Database.Services.ListQuestions(c.UserContext(), c.Params("topicId"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", questions)
}

func GetQuestion(c *fiber.Ctx) error {
	question, err := database.Database.Services.GetQuestion(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question fetched successfully!", question)
}

func UpdateQuestion(c *fiber.Ctx) error {
	reqData := c.Locals("validatedQuestion").(services.QuestionInput)

	question, err := database.Database.Services.UpdateQuestion(c.UserContext(), c.Params("id"), reqData)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

func DeleteQuestion(c *fiber.Ctx) error {
	if err := database.Database.Services.DeleteQuestion(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
