package services

import (
	"context"

	"prepcourse/store"

	"github.com/pkg/errors"
)

// linkSubjects points the resolvable ids at courseID. Ids that match no
// subject are dropped without error.
func linkSubjects(ctx context.Context, st store.Store, courseID string, ids []string) error {
	ids = collect(ids, func(id string) string { return id })
	if len(ids) == 0 {
		return nil
	}
	found, err := st.Subjects().FindByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "resolve subjects")
	}
	if len(found) == 0 {
		return nil
	}
	valid := make([]string, 0, len(found))
	for _, subject := range found {
		valid = append(valid, subject.ID)
	}
	return st.Subjects().SetCourse(ctx, valid, courseID)
}

// relinkSubjects makes ids the complete subject set of courseID: every
// currently linked subject is detached, then ids are attached. Both phases
// share one transaction where the backend supports it.
func (s *Service) relinkSubjects(ctx context.Context, courseID string, ids []string) error {
	return s.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.Subjects().ClearCourse(ctx, courseID); err != nil {
			return errors.Wrap(err, "detach subjects")
		}
		return linkSubjects(ctx, tx, courseID, ids)
	})
}
