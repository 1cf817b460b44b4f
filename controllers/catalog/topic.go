package controllers

import (
	"prepcourse/database"
	"prepcourse/middleware"
	"prepcourse/services"

	"github.com/gofiber/fiber/v2"
)

func CreateTopic(c *fiber.Ctx) error {
	reqData := c.Locals("validatedTopic").(services.TopicInput)

	topic, err := database.Database.Services.CreateTopic(c.UserContext(), reqData)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Topic created successfully!", topic)
}

func GetTopicsBySubject(c *fiber.Ctx) error {
	topics, err := database.Database.Services.ListTopics(c.UserContext(), c.Params("subjectId"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topics fetched successfully!", topics)
}

func GetTopic(c *fiber.Ctx) error {
	topic, err := database.Database.Services.GetTopic(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic fetched successfully!", topic)
}

func UpdateTopic(c *fiber.Ctx) error {
	reqData := c.Locals("validatedTopic").(services.TopicInput)

	topic, err := database.Database.Services.UpdateTopic(c.UserContext(), c.Params("id"), reqData)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic updated successfully!", topic)
}

func DeleteTopic(c *fiber.Ctx) error {
	if err := database.Database.Services.DeleteTopic(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic deleted successfully!", nil)
}
