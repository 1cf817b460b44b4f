package studentValidator

import (
	"fmt"
	"strings"

	"prepcourse/middleware"
	"prepcourse/models"
	"prepcourse/services"
	"prepcourse/validators"

	"github.com/gofiber/fiber/v2"
)

type createStudentRequest struct {
	Name                    string `json:"name" validate:"required"`
	Email                   string `json:"email" validate:"required,email"`
	Phone                   string `json:"phone" validate:"required"`
	Password                string `json:"password" validate:"omitempty,min=6"`
	MockInterviewsAvailable int    `json:"mockInterviewsAvailable" validate:"gte=0"`
}

// CreateStudents expects a non-empty JSON array of students.
func CreateStudents() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var reqData []createStudentRequest
		if err := c.BodyParser(&reqData); err != nil || len(reqData) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Students array required", nil)
		}

		errors := make(map[string]string)
		inputs := make([]services.StudentInput, 0, len(reqData))
		for i := range reqData {
			r := &reqData[i]
			r.Name = strings.TrimSpace(r.Name)
			r.Email = strings.TrimSpace(r.Email)
			r.Phone = strings.TrimSpace(r.Phone)
			errors = validators.Merge(errors, validators.Struct(r, fmt.Sprintf("students[%d]", i)))
			inputs = append(inputs, services.StudentInput{
				Name:                    r.Name,
				Email:                   r.Email,
				Phone:                   r.Phone,
				Password:                r.Password,
				MockInterviewsAvailable: r.MockInterviewsAvailable,
			})
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudents", inputs)
		return c.Next()
	}
}

type updateStudentRequest struct {
	Name                    *string                   `json:"name"`
	Email                   *string                   `json:"email" validate:"omitempty,email"`
	Phone                   *string                   `json:"phone"`
	PurchasedCourses        *[]models.PurchasedCourse `json:"purchasedCourses"`
	MockInterviewsAvailable *int                      `json:"mockInterviewsAvailable" validate:"omitempty,gte=0"`
}

func UpdateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(updateStudentRequest)
		if ok, err := validators.ParseBody(c, reqData); !ok {
			return err
		}
		if reqData.Email != nil {
			email := strings.TrimSpace(*reqData.Email)
			reqData.Email = &email
		}
		if errors := validators.Struct(reqData, ""); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudentUpdate", services.StudentUpdate{
			Name:                    reqData.Name,
			Email:                   reqData.Email,
			Phone:                   reqData.Phone,
			PurchasedCourses:        reqData.PurchasedCourses,
			MockInterviewsAvailable: reqData.MockInterviewsAvailable,
		})
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Password string `json:"password" validate:"required,min=6"`
		})
		if ok, err := validators.ParseBody(c, reqData); !ok {
			return err
		}
		if errors := validators.Struct(reqData, ""); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedPassword", reqData.Password)
		return c.Next()
	}
}

// PurchasedCourse reads {courseId} for attaching or detaching a purchase.
func PurchasedCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID string `json:"courseId" query:"courseId" validate:"required"`
		})
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		if len(c.Body()) > 0 {
			if ok, err := validators.ParseBody(c, reqData); !ok {
				return err
			}
		}
		reqData.CourseID = strings.TrimSpace(reqData.CourseID)
		if errors := validators.Struct(reqData, ""); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}
		c.Locals("validatedCourseId", reqData.CourseID)
		return c.Next()
	}
}
