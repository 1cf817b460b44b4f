package controllers

import (
	"prepcourse/database"
	"prepcourse/middleware"
	validators "prepcourse/validators/bookmark"

	"github.com/gofiber/fiber/v2"
)

// AddBookmark answers 201 for a new bookmark and 200 when the pair was
// already bookmarked.
func AddBookmark(c *fiber.Ctx) error {
	reqData := c.Locals("validatedBookmark").(*validators.BookmarkRequest)

	bookmark, created, err := database.Database.Services.AddBookmark(c.UserContext(), reqData.StudentID, reqData.QuestionID)
	if err != nil {
		return err
	}
	if !created {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Question already bookmarked", bookmark)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question bookmarked successfully", bookmark)
}

func RemoveBookmark(c *fiber.Ctx) error {
	reqData := c.Locals("validatedBookmark").(*validators.BookmarkRequest)

	if err := database.Database.Services.RemoveBookmark(c.UserContext(), reqData.StudentID, reqData.QuestionID); err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bookmark removed successfully", nil)
}

func GetStudentBookmarks(c *fiber.Ctx) error {
	groups, err := database.Database.Services.GroupedBookmarks(c.UserContext(), c.Params("studentId"))
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bookmarks fetched successfully", groups)
}

func CheckBookmark(c *fiber.Ctx) error {
	reqData := c.Locals("validatedBookmark").(*validators.BookmarkRequest)

	bookmark, err := database.Database.Services.CheckBookmark(c.UserContext(), reqData.StudentID, reqData.QuestionID)
	if err != nil {
		return err
	}
	data := fiber.Map{"isBookmarked": bookmark != nil, "bookmarkId": nil}
	if bookmark != nil {
		data["bookmarkId"] = bookmark.ID
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bookmark status fetched", data)
}
