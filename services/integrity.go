package services

import (
	"context"
	"time"

	"prepcourse/models"
	"prepcourse/store"

	"github.com/pkg/errors"
)

// IntegrityReport lists records whose parent link resolves to nothing.
// Deletes never cascade, so these accumulate; the report only describes
// them.
type IntegrityReport struct {
	OrphanSubjects  []models.Subject  `json:"orphanSubjects"`
	OrphanTopics    []models.Topic    `json:"orphanTopics"`
	OrphanQuestions []models.Question `json:"orphanQuestions"`
	CheckedAt       time.Time         `json:"checkedAt"`
}

func (r *IntegrityReport) Total() int {
	return len(r.OrphanSubjects) + len(r.OrphanTopics) + len(r.OrphanQuestions)
}

func (s *Service) IntegrityReport(ctx context.Context) (*IntegrityReport, error) {
	report := &IntegrityReport{
		OrphanSubjects:  []models.Subject{},
		OrphanTopics:    []models.Topic{},
		OrphanQuestions: []models.Question{},
		CheckedAt:       s.now().UTC(),
	}

	subjects, err := s.store.Subjects().List(ctx, store.SubjectFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "list subjects")
	}
	courses, err := s.store.Courses().FindByIDs(ctx, collect(subjects, func(sub models.Subject) string {
		if sub.CourseID == nil {
			return ""
		}
		return *sub.CourseID
	}))
	if err != nil {
		return nil, errors.Wrap(err, "resolve subject courses")
	}
	courseByID := index(courses, func(c models.Course) string { return c.ID })
	for _, sub := range subjects {
		if sub.CourseID == nil {
			continue
		}
		if _, ok := courseByID[*sub.CourseID]; !ok {
			report.OrphanSubjects = append(report.OrphanSubjects, sub)
		}
	}
	subjectByID := index(subjects, func(sub models.Subject) string { return sub.ID })

	topics, err := s.store.Topics().List(ctx, store.TopicFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "list topics")
	}
	for _, t := range topics {
		if _, ok := subjectByID[t.SubjectID]; !ok {
			report.OrphanTopics = append(report.OrphanTopics, t)
		}
	}
	topicByID := index(topics, func(t models.Topic) string { return t.ID })

	questions, err := s.store.Questions().List(ctx, store.QuestionFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "list questions")
	}
	for _, q := range questions {
		if _, ok := topicByID[q.TopicID]; !ok {
			report.OrphanQuestions = append(report.OrphanQuestions, q)
		}
	}
	return report, nil
}
