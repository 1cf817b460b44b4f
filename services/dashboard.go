package services

import (
	"context"

	"prepcourse/models"
	"prepcourse/store"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const recentCompletionsSize = 5

type DashboardStats struct {
	Courses           int64                   `json:"courses"`
	Subjects          int64                   `json:"subjects"`
	Topics            int64                   `json:"topics"`
	Questions         int64                   `json:"questions"`
	Students          int64                   `json:"students"`
	Bookmarks         int64                   `json:"bookmarks"`
	Completions       int64                   `json:"completions"`
	RecentCompletions []models.CompletionView `json:"recentCompletions"`
}

// DashboardStats gathers catalog and ledger totals. Students counts only
// those not soft-deleted.
func (s *Service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, name string, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return errors.Wrapf(err, "count %s", name)
			}
			*dst = n
			return nil
		})
	}
	count(&stats.Courses, "courses", s.store.Courses().Count)
	count(&stats.Subjects, "subjects", func(ctx context.Context) (int64, error) {
		return s.store.Subjects().Count(ctx, store.SubjectFilter{})
	})
	count(&stats.Topics, "topics", func(ctx context.Context) (int64, error) {
		return s.store.Topics().Count(ctx, store.TopicFilter{})
	})
	count(&stats.Questions, "questions", func(ctx context.Context) (int64, error) {
		return s.store.Questions().Count(ctx, store.QuestionFilter{})
	})
	count(&stats.Students, "students", func(ctx context.Context) (int64, error) {
		return s.store.Students().Count(ctx, false)
	})
	count(&stats.Bookmarks, "bookmarks", s.store.Bookmarks().Count)
	count(&stats.Completions, "completions", s.store.Completions().Count)

	g.Go(func() error {
		recent, err := s.listCompletions(gctx, store.CompletionFilter{Limit: recentCompletionsSize})
		if err != nil {
			return errors.Wrap(err, "load recent completions")
		}
		stats.RecentCompletions = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
