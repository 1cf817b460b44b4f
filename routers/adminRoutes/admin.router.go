package adminRoutes

import (
	controllers "prepcourse/controllers/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	app.Get("/api/health", controllers.HealthCheck)

	adminGroup := app.Group("/api/admin")
	adminGroup.Get("/dashboard/stats", controllers.GetDashboardStats)
	adminGroup.Get("/integrity", controllers.GetIntegrityReport)
}
