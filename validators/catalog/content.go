package catalogValidator

import (
	"prepcourse/middleware"
	"prepcourse/models"
	"prepcourse/services"
	"prepcourse/validators"

	"github.com/gofiber/fiber/v2"
)

type subjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CourseID    *string `json:"courseId"`
	Level       *string `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Image       *string `json:"image"`
}

func parseSubject(c *fiber.Ctx, create bool) error {
	reqData := new(subjectRequest)
	if ok, err := validators.ParseBody(c, reqData); !ok {
		return err
	}
	reqData.Title = trimmed(reqData.Title)

	errors := validators.Merge(validators.Struct(reqData, ""))
	requireText(errors, "title", reqData.Title, create)
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	in := services.SubjectInput{
		Title:       reqData.Title,
		Description: reqData.Description,
		CourseID:    trimmed(reqData.CourseID),
		Image:       reqData.Image,
	}
	if reqData.Level != nil {
		level := models.Level(*reqData.Level)
		in.Level = &level
	}
	c.Locals("validatedSubject", in)
	return c.Next()
}

func CreateSubject() fiber.Handler {
	return func(c *fiber.Ctx) error { return parseSubject(c, true) }
}

// UpdateSubject treats an empty courseId as a request to unlink.
func UpdateSubject() fiber.Handler {
	return func(c *fiber.Ctx) error { return parseSubject(c, false) }
}

type topicRequest struct {
	Topic       *string `json:"topic"`
	Description *string `json:"description"`
	SubjectID   *string `json:"subject"`
}

func parseTopic(c *fiber.Ctx, create bool) error {
	reqData := new(topicRequest)
	if ok, err := validators.ParseBody(c, reqData); !ok {
		return err
	}
	reqData.Topic = trimmed(reqData.Topic)
	reqData.SubjectID = trimmed(reqData.SubjectID)

	errors := validators.Merge(validators.Struct(reqData, ""))
	requireText(errors, "topic", reqData.Topic, create)
	requireText(errors, "subject", reqData.SubjectID, create)
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedTopic", services.TopicInput{
		Topic:       reqData.Topic,
		Description: reqData.Description,
		SubjectID:   reqData.SubjectID,
	})
	return c.Next()
}

func CreateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error { return parseTopic(c, true) }
}

func UpdateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error { return parseTopic(c, false) }
}

type questionRequest struct {
	Question    *string `json:"question"`
	Answer      *string `json:"answer"`
	TopicID     *string `json:"topic"`
	DefaultCode *string `json:"defaultCode"`
}

func parseQuestion(c *fiber.Ctx, create bool) error {
	reqData := new(questionRequest)
	if ok, err := validators.ParseBody(c, reqData); !ok {
		return err
	}
	reqData.Question = trimmed(reqData.Question)
	reqData.TopicID = trimmed(reqData.TopicID)

	errors := validators.Merge(validators.Struct(reqData, ""))
	requireText(errors, "question", reqData.Question, create)
	requireText(errors, "topic", reqData.TopicID, create)
	if len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals("validatedQuestion", services.QuestionInput{
		Question:    reqData.Question,
		Answer:      reqData.Answer,
		TopicID:     reqData.TopicID,
		DefaultCode: reqData.DefaultCode,
	})
	return c.Next()
}

func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error { return parseQuestion(c, true) }
}

func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error { return parseQuestion(c, false) }
}
