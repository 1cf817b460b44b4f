package services

import (
	"context"

	"prepcourse/models"
	"prepcourse/store"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// courseCounts walks Course -> Subjects -> Topics -> Questions. A stage with
// no ids stops the walk without querying further collections.
func (s *Service) courseCounts(ctx context.Context, courseID string) (subjects, questions int64, err error) {
	filter := store.SubjectFilter{CourseID: &courseID}
	subjects, err = s.store.Subjects().Count(ctx, filter)
	if err != nil {
		return 0, 0, errors.Wrap(err, "count course subjects")
	}
	if subjects == 0 {
		return 0, 0, nil
	}

	subjectIDs, err := s.store.Subjects().IDs(ctx, filter)
	if err != nil {
		return 0, 0, errors.Wrap(err, "load course subject ids")
	}
	if len(subjectIDs) == 0 {
		return subjects, 0, nil
	}

	topicIDs, err := s.store.Topics().IDs(ctx, store.TopicFilter{SubjectIDs: subjectIDs})
	if err != nil {
		return 0, 0, errors.Wrap(err, "load course topic ids")
	}
	if len(topicIDs) == 0 {
		return subjects, 0, nil
	}

	questions, err = s.store.Questions().Count(ctx, store.QuestionFilter{TopicIDs: topicIDs})
	if err != nil {
		return 0, 0, errors.Wrap(err, "count course questions")
	}
	return subjects, questions, nil
}

func (s *Service) subjectCounts(ctx context.Context, subjectID string) (topics, questions int64, err error) {
	filter := store.TopicFilter{SubjectIDs: []string{subjectID}}
	topics, err = s.store.Topics().Count(ctx, filter)
	if err != nil {
		return 0, 0, errors.Wrap(err, "count subject topics")
	}
	if topics == 0 {
		return 0, 0, nil
	}

	topicIDs, err := s.store.Topics().IDs(ctx, filter)
	if err != nil {
		return 0, 0, errors.Wrap(err, "load subject topic ids")
	}
	if len(topicIDs) == 0 {
		return topics, 0, nil
	}

	questions, err = s.store.Questions().Count(ctx, store.QuestionFilter{TopicIDs: topicIDs})
	if err != nil {
		return 0, 0, errors.Wrap(err, "count subject questions")
	}
	return topics, questions, nil
}

// GetCourse returns the course with its subject and question counts.
func (s *Service) GetCourse(ctx context.Context, id string) (*models.CourseWithCounts, error) {
	course, err := s.store.Courses().Get(ctx, id)
	if err != nil {
		return nil, notFound("Course", err)
	}
	subjects, questions, err := s.courseCounts(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.CourseWithCounts{Course: *course, SubjectCount: subjects, QuestionCount: questions}, nil
}

// ListCourses annotates every course with counts. A course whose counts fail
// is logged and reported with zero counts.
func (s *Service) ListCourses(ctx context.Context) ([]models.CourseWithCounts, error) {
	courses, err := s.store.Courses().List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.CourseWithCounts, len(courses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range courses {
		i := i
		out[i].Course = courses[i]
		g.Go(func() error {
			subjects, questions, err := s.courseCounts(gctx, courses[i].ID)
			if err != nil {
				log.Error("Failed to count course contents", "courseId", courses[i].ID, "err", err)
				return nil
			}
			out[i].SubjectCount = subjects
			out[i].QuestionCount = questions
			return nil
		})
	}
	_ = g.Wait()
	return out, nil
}

func (s *Service) GetSubject(ctx context.Context, id string) (*models.SubjectWithCounts, error) {
	subject, err := s.store.Subjects().Get(ctx, id)
	if err != nil {
		return nil, notFound("Subject", err)
	}
	topics, questions, err := s.subjectCounts(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.SubjectWithCounts{Subject: *subject, TopicCount: topics, QuestionCount: questions}, nil
}

// ListSubjects annotates subjects with counts; courseID, when set, restricts
// the listing to that course. Per-subject failures degrade to zero counts.
func (s *Service) ListSubjects(ctx context.Context, courseID *string) ([]models.SubjectWithCounts, error) {
	subjects, err := s.store.Subjects().List(ctx, store.SubjectFilter{CourseID: courseID})
	if err != nil {
		return nil, err
	}

	out := make([]models.SubjectWithCounts, len(subjects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range subjects {
		i := i
		out[i].Subject = subjects[i]
		g.Go(func() error {
			topics, questions, err := s.subjectCounts(gctx, subjects[i].ID)
			if err != nil {
				log.Error("Failed to count subject contents", "subjectId", subjects[i].ID, "err", err)
				return nil
			}
			out[i].TopicCount = topics
			out[i].QuestionCount = questions
			return nil
		})
	}
	_ = g.Wait()
	return out, nil
}
