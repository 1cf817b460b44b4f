package bookmarkValidator

import (
	"strings"

	"prepcourse/middleware"
	"prepcourse/validators"

	"github.com/gofiber/fiber/v2"
)

// BookmarkRequest identifies one (student, question) pair.
type BookmarkRequest struct {
	StudentID  string `json:"studentId" query:"studentId" validate:"required"`
	QuestionID string `json:"questionId" query:"questionId" validate:"required"`
}

func (r *BookmarkRequest) trim() {
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.QuestionID = strings.TrimSpace(r.QuestionID)
}

func finish(c *fiber.Ctx, reqData *BookmarkRequest) error {
	reqData.trim()
	if errors := validators.Struct(reqData, ""); len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}
	c.Locals("validatedBookmark", reqData)
	return c.Next()
}

// BookmarkBody reads the pair from the JSON body. Query parameters fill in
// when the body is empty, since some clients cannot send a DELETE body.
func BookmarkBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BookmarkRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		if len(c.Body()) > 0 {
			if ok, err := validators.ParseBody(c, reqData); !ok {
				return err
			}
		}
		return finish(c, reqData)
	}
}

func BookmarkQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BookmarkRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		return finish(c, reqData)
	}
}
