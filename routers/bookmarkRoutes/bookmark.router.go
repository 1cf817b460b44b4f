package bookmarkRoutes

import (
	controllers "prepcourse/controllers/bookmark"
	"prepcourse/validators"
	bookmarkValidator "prepcourse/validators/bookmark"

	"github.com/gofiber/fiber/v2"
)

// SetupBookmarkRoutes sets up student bookmark routes
func SetupBookmarkRoutes(app *fiber.App) {
	bookmarkGroup := app.Group("/api/bookmarks")

	bookmarkGroup.Post("/", bookmarkValidator.BookmarkBody(), controllers.AddBookmark)
	bookmarkGroup.Delete("/", bookmarkValidator.BookmarkBody(), controllers.RemoveBookmark)
	bookmarkGroup.Get("/check", bookmarkValidator.BookmarkQuery(), controllers.CheckBookmark)
	bookmarkGroup.Get("/student/:studentId", validators.RequireParams("studentId"), controllers.GetStudentBookmarks)
}
