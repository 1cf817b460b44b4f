package services

import (
	"context"
	"strings"
	"time"

	"prepcourse/models"
	"prepcourse/store"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
)

// CompletionQuery filters the cross-student ledger. Bounds are inclusive.
type CompletionQuery struct {
	StudentID string
	From      *time.Time
	To        *time.Time
}

// MarkComplete records that studentID finished topicID. A completion is
// written once: later calls, and calls that lose a race on the unique index,
// return the original record with created=false.
func (s *Service) MarkComplete(ctx context.Context, studentID, topicID string) (completion *models.TopicCompletion, created bool, err error) {
	existing, err := s.store.Completions().Find(ctx, studentID, topicID)
	if err == nil {
		return existing, false, nil
	}
	if !store.IsNotFound(err) {
		return nil, false, err
	}

	completion = &models.TopicCompletion{
		StudentID:   studentID,
		TopicID:     topicID,
		CompletedAt: s.now().UTC(),
	}
	err = s.store.Completions().Create(ctx, completion)
	if store.IsDuplicate(err) {
		existing, err = s.store.Completions().Find(ctx, studentID, topicID)
		if err != nil {
			return nil, false, errors.Wrap(err, "reload raced completion")
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return completion, true, nil
}

// CheckCompletion returns the completion for the pair, or nil.
func (s *Service) CheckCompletion(ctx context.Context, studentID, topicID string) (*models.TopicCompletion, error) {
	tc, err := s.store.Completions().Find(ctx, studentID, topicID)
	if store.IsNotFound(err) {
		return nil, nil
	}
	return tc, err
}

func (s *Service) StudentCompletions(ctx context.Context, studentID string) ([]models.CompletionView, error) {
	return s.listCompletions(ctx, store.CompletionFilter{StudentID: studentID})
}

func (s *Service) AllCompletions(ctx context.Context, q CompletionQuery) ([]models.CompletionView, error) {
	return s.listCompletions(ctx, store.CompletionFilter{StudentID: q.StudentID, From: q.From, To: q.To})
}

func (s *Service) listCompletions(ctx context.Context, filter store.CompletionFilter) ([]models.CompletionView, error) {
	completions, err := s.store.Completions().List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.annotateCompletions(ctx, completions)
}

// annotateCompletions attaches topic and student references. A reference is
// left nil when its target has been removed.
func (s *Service) annotateCompletions(ctx context.Context, completions []models.TopicCompletion) ([]models.CompletionView, error) {
	topics, err := s.store.Topics().FindByIDs(ctx, collect(completions, func(tc models.TopicCompletion) string { return tc.TopicID }))
	if err != nil {
		return nil, errors.Wrap(err, "populate completion topics")
	}
	topicByID := index(topics, func(t models.Topic) string { return t.ID })

	students, err := s.store.Students().FindByIDs(ctx, collect(completions, func(tc models.TopicCompletion) string { return tc.StudentID }))
	if err != nil {
		return nil, errors.Wrap(err, "populate completion students")
	}
	studentByID := index(students, func(st models.Student) string { return st.ID })

	out := make([]models.CompletionView, 0, len(completions))
	for _, tc := range completions {
		view := models.CompletionView{
			ID:          tc.ID,
			StudentID:   tc.StudentID,
			TopicID:     tc.TopicID,
			CompletedAt: tc.CompletedAt,
			CreatedAt:   tc.CreatedAt,
			UpdatedAt:   tc.UpdatedAt,
		}
		if t, ok := topicByID[tc.TopicID]; ok {
			view.Topic = &models.TopicRef{ID: t.ID, Topic: t.Topic, Description: t.Description}
		}
		if st, ok := studentByID[tc.StudentID]; ok {
			view.Student = &models.StudentRef{ID: st.ID, Name: st.Name, Email: st.Email}
		}
		out = append(out, view)
	}
	return out, nil
}

const dateLayout = "2006-01-02"

// ParseDateRange reads optional start/end bounds. A bare date is taken in
// loc; as an end bound it covers that whole day. RFC3339 values are used as
// given.
func ParseDateRange(start, end string, loc *time.Location) (from, to *time.Time, err error) {
	if from, err = parseBound(start, loc, false); err != nil {
		return nil, nil, errors.Wrapf(ErrInvalidDate, "startDate %q", start)
	}
	if to, err = parseBound(end, loc, true); err != nil {
		return nil, nil, errors.Wrapf(ErrInvalidDate, "endDate %q", end)
	}
	return from, to, nil
}

func parseBound(v string, loc *time.Location, endOfDay bool) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation(dateLayout, v, loc)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = now.With(t).EndOfDay()
	}
	return &t, nil
}
