package completionValidator

import (
	"strings"

	"prepcourse/config"
	"prepcourse/middleware"
	"prepcourse/services"
	"prepcourse/validators"

	"github.com/gofiber/fiber/v2"
)

type CompletionRequest struct {
	StudentID string `json:"studentId" query:"studentId" validate:"required"`
	TopicID   string `json:"topicId" query:"topicId" validate:"required"`
}

func finishPair(c *fiber.Ctx, reqData *CompletionRequest) error {
	reqData.StudentID = strings.TrimSpace(reqData.StudentID)
	reqData.TopicID = strings.TrimSpace(reqData.TopicID)
	if errors := validators.Struct(reqData, ""); len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}
	c.Locals("validatedCompletion", reqData)
	return c.Next()
}

func MarkComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompletionRequest)
		if ok, err := validators.ParseBody(c, reqData); !ok {
			return err
		}
		return finishPair(c, reqData)
	}
}

func CheckCompletion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompletionRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		return finishPair(c, reqData)
	}
}

type rangeQuery struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	StudentID string `query:"studentId"`
	Limit     int    `query:"limit" validate:"gte=0"`
}

// LedgerQuery parses the optional date range and student filter shared by
// the cross-student listing and analytics. Date-only bounds are read in the
// configured TIMEZONE.
func LedgerQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(rangeQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		if errors := validators.Struct(reqData, ""); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		from, to, err := services.ParseDateRange(reqData.StartDate, reqData.EndDate, config.AppConfig.Location())
		if err != nil {
			return err
		}
		c.Locals("validatedLedgerQuery", services.CompletionQuery{
			StudentID: strings.TrimSpace(reqData.StudentID),
			From:      from,
			To:        to,
		})
		c.Locals("validatedLimit", reqData.Limit)
		return c.Next()
	}
}
