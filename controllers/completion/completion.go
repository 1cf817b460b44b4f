package controllers

import (
	"prepcourse/database"
	"prepcourse/middleware"
	"prepcourse/services"
	validators "prepcourse/validators/completion"

	"github.com/gofiber/fiber/v2"
)

func MarkTopicComplete(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCompletion").(*validators.CompletionRequest)

	completion, created, err := database.Database.Services.MarkComplete(c.UserContext(), reqData.StudentID, reqData.TopicID)
	if err != nil {
		return err
	}
	if !created {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic already marked as complete", completion)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Topic marked as complete", completion)
}

func CheckTopicCompletion(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCompletion").(*validators.CompletionRequest)

	completion, err := database.Database.Services.CheckCompletion(c.UserContext(), reqData.StudentID, reqData.TopicID)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completion status fetched", fiber.Map{
		"isCompleted": completion != nil,
		"completion":  completion,
	})
}

func GetStudentCompletions(c *fiber.Ctx) error {
	completions, err := database.Database.Services.StudentCompletions(c.UserContext(), c.Params("studentId"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completions fetched successfully", completions)
}

func GetAllCompletions(c *fiber.Ctx) error {
	query := c.Locals("validatedLedgerQuery").(services.CompletionQuery)

	completions, err := database.Database.Services.AllCompletions(c.UserContext(), query)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completions fetched successfully", completions)
}

func GetCompletionAnalytics(c *fiber.Ctx) error {
	query := c.Locals("validatedLedgerQuery").(services.CompletionQuery)
	limit := c.Locals("validatedLimit").(int)

	analytics, err := database.Database.Services.CompletionAnalytics(c.UserContext(), query, limit)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completion analytics fetched successfully", analytics)
}
