// Package routers assembles the Fiber application.
package routers

import (
	"prepcourse/config"
	"prepcourse/middleware"
	"prepcourse/routers/adminRoutes"
	"prepcourse/routers/bookmarkRoutes"
	"prepcourse/routers/catalogRoutes"
	"prepcourse/routers/completionRoutes"
	"prepcourse/routers/studentRoutes"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the application with every route and middleware installed.
// It reads config.AppConfig, which must be loaded first.
func NewApp() *fiber.App {
	cfg := config.AppConfig

	app := fiber.New(fiber.Config{
		AppName:      "prepcourse",
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CorsAllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	adminRoutes.SetupAdminRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	bookmarkRoutes.SetupBookmarkRoutes(app)
	completionRoutes.SetupCompletionRoutes(app)

	app.Use(middleware.NotFoundRoute)

	return app
}
