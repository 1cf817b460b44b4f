package services

import (
	"context"
	"strings"

	"prepcourse/models"
	"prepcourse/store"

	"github.com/charmbracelet/log"
)

// Input fields are pointers so updates touch only what the caller sent.

type CourseInput struct {
	Title       *string
	Description *string
	Duration    *string
	Price       *float64
	CompareAt   *float64
	Level       *models.Level
	Image       *string
	// Subjects is the authoritative subject selection. nil leaves links
	// untouched; an empty slice detaches every subject.
	Subjects []string
}

type SubjectInput struct {
	Title       *string
	Description *string
	CourseID    *string
	Level       *models.Level
	Image       *string
}

type TopicInput struct {
	Topic       *string
	Description *string
	SubjectID   *string
}

type QuestionInput struct {
	Question    *string
	Answer      *string
	TopicID     *string
	DefaultCode *string
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (in CourseInput) apply(c *models.Course) {
	set(&c.Title, in.Title)
	set(&c.Description, in.Description)
	set(&c.Duration, in.Duration)
	set(&c.Price, in.Price)
	set(&c.Level, in.Level)
	set(&c.Image, in.Image)
	if in.CompareAt != nil {
		v := *in.CompareAt
		c.CompareAt = &v
	}
}

// CreateCourse stores the course and links the requested subjects. Linking
// failures are logged; the course is still created.
func (s *Service) CreateCourse(ctx context.Context, in CourseInput) (*models.Course, error) {
	course := &models.Course{Level: models.LevelBeginner}
	in.apply(course)
	if err := s.store.Courses().Create(ctx, course); err != nil {
		return nil, err
	}

	if len(in.Subjects) > 0 {
		if err := linkSubjects(ctx, s.store, course.ID, in.Subjects); err != nil {
			log.Error("Failed to link subjects to course", "courseId", course.ID, "err", err)
		}
	}
	return course, nil
}

// UpdateCourse applies the provided fields. When in.Subjects is non-nil the
// course's subject set is replaced; a failure there is logged and the field
// update still succeeds.
func (s *Service) UpdateCourse(ctx context.Context, id string, in CourseInput) (*models.Course, error) {
	course, err := s.store.Courses().Get(ctx, id)
	if err != nil {
		return nil, notFound("Course", err)
	}
	in.apply(course)
	if err := s.store.Courses().Update(ctx, course); err != nil {
		return nil, notFound("Course", err)
	}

	if in.Subjects != nil {
		if err := s.relinkSubjects(ctx, course.ID, in.Subjects); err != nil {
			log.Error("Failed to relink course subjects", "courseId", course.ID, "err", err)
		}
	}
	return course, nil
}

// DeleteCourse removes only the course. Linked subjects keep their
// courseId and fall out of every course listing.
func (s *Service) DeleteCourse(ctx context.Context, id string) error {
	return notFound("Course", s.store.Courses().Delete(ctx, id))
}

func (s *Service) requireCourse(ctx context.Context, id string) error {
	_, err := s.store.Courses().Get(ctx, id)
	return notFound("Course", err)
}

func (s *Service) CreateSubject(ctx context.Context, in SubjectInput) (*models.Subject, error) {
	subject := &models.Subject{Level: models.LevelBeginner}
	set(&subject.Title, in.Title)
	set(&subject.Description, in.Description)
	set(&subject.Level, in.Level)
	set(&subject.Image, in.Image)
	if in.CourseID != nil && strings.TrimSpace(*in.CourseID) != "" {
		courseID := strings.TrimSpace(*in.CourseID)
		if err := s.requireCourse(ctx, courseID); err != nil {
			return nil, err
		}
		subject.CourseID = &courseID
	}
	if err := s.store.Subjects().Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// UpdateSubject applies the provided fields. An empty CourseID unlinks the
// subject from its course.
func (s *Service) UpdateSubject(ctx context.Context, id string, in SubjectInput) (*models.Subject, error) {
	subject, err := s.store.Subjects().Get(ctx, id)
	if err != nil {
		return nil, notFound("Subject", err)
	}
	set(&subject.Title, in.Title)
	set(&subject.Description, in.Description)
	set(&subject.Level, in.Level)
	set(&subject.Image, in.Image)
	if in.CourseID != nil {
		courseID := strings.TrimSpace(*in.CourseID)
		if courseID == "" {
			subject.CourseID = nil
		} else {
			if err := s.requireCourse(ctx, courseID); err != nil {
				return nil, err
			}
			subject.CourseID = &courseID
		}
	}
	if err := s.store.Subjects().Update(ctx, subject); err != nil {
		return nil, notFound("Subject", err)
	}
	return subject, nil
}

func (s *Service) DeleteSubject(ctx context.Context, id string) error {
	return notFound("Subject", s.store.Subjects().Delete(ctx, id))
}

func (s *Service) CreateTopic(ctx context.Context, in TopicInput) (*models.Topic, error) {
	topic := &models.Topic{}
	set(&topic.Topic, in.Topic)
	set(&topic.Description, in.Description)
	set(&topic.SubjectID, in.SubjectID)
	if _, err := s.store.Subjects().Get(ctx, topic.SubjectID); err != nil {
		return nil, notFound("Subject", err)
	}
	if err := s.store.Topics().Create(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *Service) GetTopic(ctx context.Context, id string) (*models.Topic, error) {
	topic, err := s.store.Topics().Get(ctx, id)
	if err != nil {
		return nil, notFound("Topic", err)
	}
	return topic, nil
}

// ListTopics returns the topics of one subject. An unknown subject yields an
// empty list.
func (s *Service) ListTopics(ctx context.Context, subjectID string) ([]models.Topic, error) {
	return s.store.Topics().List(ctx, store.TopicFilter{SubjectIDs: []string{subjectID}})
}

func (s *Service) UpdateTopic(ctx context.Context, id string, in TopicInput) (*models.Topic, error) {
	topic, err := s.store.Topics().Get(ctx, id)
	if err != nil {
		return nil, notFound("Topic", err)
	}
	set(&topic.Topic, in.Topic)
	set(&topic.Description, in.Description)
	if in.SubjectID != nil && *in.SubjectID != topic.SubjectID {
		if _, err := s.store.Subjects().Get(ctx, *in.SubjectID); err != nil {
			return nil, notFound("Subject", err)
		}
		topic.SubjectID = *in.SubjectID
	}
	if err := s.store.Topics().Update(ctx, topic); err != nil {
		return nil, notFound("Topic", err)
	}
	return topic, nil
}

func (s *Service) DeleteTopic(ctx context.Context, id string) error {
	return notFound("Topic", s.store.Topics().Delete(ctx, id))
}

func (s *Service) CreateQuestion(ctx context.Context, in QuestionInput) (*models.Question, error) {
	question := &models.Question{}
	set(&question.Question, in.Question)
	set(&question.Answer, in.Answer)
	set(&question.TopicID, in.TopicID)
	set(&question.DefaultCode, in.DefaultCode)
	if _, err := s.store.Topics().Get(ctx, question.TopicID); err != nil {
		return nil, notFound("Topic", err)
	}
	if err := s.store.Questions().Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *Service) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	question, err := s.store.Questions().Get(ctx, id)
	if err != nil {
		return nil, notFound("Question", err)
	}
	return question, nil
}

func (s *Service) ListQuestions(ctx context.Context, topicID string) ([]models.Question, error) {
	return s.store.Questions().List(ctx, store.QuestionFilter{TopicIDs: []string{topicID}})
}

func (s *Service) UpdateQuestion(ctx context.Context, id string, in QuestionInput) (*models.Question, error) {
	question, err := s.store.Questions().Get(ctx, id)
	if err != nil {
		return nil, notFound("Question", err)
	}
	set(&question.Question, in.Question)
	set(&question.Answer, in.Answer)
	set(&question.DefaultCode, in.DefaultCode)
	if in.TopicID != nil && *in.TopicID != question.TopicID {
		if _, err := s.store.Topics().Get(ctx, *in.TopicID); err != nil {
			return nil, notFound("Topic", err)
		}
		question.TopicID = *in.TopicID
	}
	if err := s.store.Questions().Update(ctx, question); err != nil {
		return nil, notFound("Question", err)
	}
	return question, nil
}

func (s *Service) DeleteQuestion(ctx context.Context, id string) error {
	return notFound("Question", s.store.Questions().Delete(ctx, id))
}
