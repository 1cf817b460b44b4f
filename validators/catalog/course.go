package catalogValidator

import (
	"strings"

	"prepcourse/middleware"
	"prepcourse/models"
	"prepcourse/services"
	"prepcourse/validators"

	"github.com/gofiber/fiber/v2"
)

type courseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Duration    *string  `json:"duration"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	CompareAt   *float64 `json:"compareAt" validate:"omitempty,gte=0"`
	Level       *string  `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Image       *string  `json:"image"`
	Subjects    []string `json:"subjects"`
}

func (r *courseRequest) input() services.CourseInput {
	in := services.CourseInput{
		Title:       trimmed(r.Title),
		Description: r.Description,
		Duration:    trimmed(r.Duration),
		Price:       r.Price,
		CompareAt:   r.CompareAt,
		Image:       r.Image,
		Subjects:    r.Subjects,
	}
	if r.Level != nil {
		level := models.Level(*r.Level)
		in.Level = &level
	}
	return in
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func parseCourse(c *fiber.Ctx, create bool) error {
	reqData := new(courseRequest)
	if ok, err := validators.ParseBody(c, reqData); !ok {
		return err
	}
	reqData.Title = trimmed(reqData.Title)
	reqData.Duration = trimmed(reqData.Duration)

	errors := validators.Merge(validators.Struct(reqData, ""))
	requireText(errors, "title", reqData.Title, create)
	requireText(errors, "duration", reqData.Duration, create)
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedCourse", reqData.input())
	return c.Next()
}

// CreateCourse requires title and duration.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseCourse(c, true)
	}
}

// UpdateCourse accepts any subset of fields. A present "subjects" array,
// even an empty one, replaces the course's subject set.
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseCourse(c, false)
	}
}

// requireText flags field when it is blank, or missing on create.
func requireText(errors map[string]string, field string, value *string, create bool) {
	if (value == nil && create) || (value != nil && *value == "") {
		errors[field] = field + " is required!"
	}
}
