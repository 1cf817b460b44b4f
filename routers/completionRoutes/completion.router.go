package completionRoutes

import (
	controllers "prepcourse/controllers/completion"
	"prepcourse/validators"
	completionValidator "prepcourse/validators/completion"

	"github.com/gofiber/fiber/v2"
)

// SetupCompletionRoutes sets up topic completion ledger routes
func SetupCompletionRoutes(app *fiber.App) {
	completionGroup := app.Group("/api/topic-completions")

	completionGroup.Post("/", completionValidator.MarkComplete(), controllers.MarkTopicComplete)
	completionGroup.Get("/check", completionValidator.CheckCompletion(), controllers.CheckTopicCompletion)
	completionGroup.Get("/student/:studentId", validators.RequireParams("studentId"), controllers.GetStudentCompletions)

	// Admin views across all students
	completionGroup.Get("/all", completionValidator.LedgerQuery(), controllers.GetAllCompletions)
	completionGroup.Get("/analytics", completionValidator.LedgerQuery(), controllers.GetCompletionAnalytics)
}
