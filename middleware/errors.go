package middleware

import (
	"prepcourse/services"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// ErrorHandler maps errors returned by handlers onto the response envelope.
// Anything unrecognised is logged and answered with 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var notFound *services.NotFoundError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &notFound):
		return JsonResponse(c, fiber.StatusNotFound, false, notFound.Error(), nil)
	case errors.Is(err, services.ErrEmailTaken):
		return JsonResponse(c, fiber.StatusConflict, false, "Email already registered", nil)
	case errors.Is(err, services.ErrAlreadyPurchased):
		return JsonResponse(c, fiber.StatusBadRequest, false, "Course already purchased", nil)
	case errors.Is(err, services.ErrInvalidDate):
		return JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date", fiber.Map{"error": err.Error()})
	case errors.As(err, &fiberErr):
		return JsonResponse(c, fiberErr.Code, false, fiberErr.Message, nil)
	}

	log.Error("Request failed", "method", c.Method(), "path", c.Path(), "err", err)
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Internal server error!", nil)
}
