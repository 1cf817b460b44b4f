package controllers

import (
	"prepcourse/database"
	"prepcourse/middleware"

	"github.com/gofiber/fiber/v2"
)

func GetDashboardStats(c *fiber.Ctx) error {
	stats, err := database.Database.Services.DashboardStats(c.UserContext())
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", stats)
}

// GetIntegrityReport lists orphaned subjects, topics and questions. Nothing
// is modified.
func GetIntegrityReport(c *fiber.Ctx) error {
	report, err := database.Database.Services.IntegrityReport(c.UserContext())
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Integrity report generated", report)
}

func HealthCheck(c *fiber.Ctx) error {
	if err := database.Database.Store.Ping(c.UserContext()); err != nil {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Database unavailable", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Server is running successfully!", nil)
}
