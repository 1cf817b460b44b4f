package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the common {status, message, data} envelope.
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}

// NotFoundRoute answers any request no route matched.
func NotFoundRoute(c *fiber.Ctx) error {
	return JsonResponse(c, fiber.StatusNotFound, false, "Route not found", nil)
}
