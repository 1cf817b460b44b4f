package mongostore

import (
	"context"
	"os"
	"testing"
	"time"

	"prepcourse/models"
	"prepcourse/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to MONGO_TEST_URI and uses a throwaway database.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := Open(ctx, uri, "prepcourse_test_"+uuid.NewString()[:8], Options{})
	require.NoError(t, err)
	require.NoError(t, s.Migrate(ctx))
	t.Cleanup(func() {
		ctx := context.Background()
		_ = s.db.Drop(ctx)
		_ = s.Close(ctx)
	})
	return s
}

func TestMongoSubjectLinking(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	course := &models.Course{Title: "Backend", Duration: "8"}
	require.NoError(t, s.Courses().Create(ctx, course))
	s1 := &models.Subject{Title: "S1"}
	s2 := &models.Subject{Title: "S2"}
	require.NoError(t, s.Subjects().Create(ctx, s1))
	require.NoError(t, s.Subjects().Create(ctx, s2))

	require.NoError(t, s.Subjects().SetCourse(ctx, []string{s1.ID, s2.ID}, course.ID))
	ids, err := s.Subjects().IDs(ctx, store.SubjectFilter{CourseID: &course.ID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{s1.ID, s2.ID}, ids)

	require.NoError(t, s.Subjects().ClearCourse(ctx, course.ID))
	got, err := s.Subjects().Get(ctx, s1.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CourseID)

	n, err := s.Subjects().Count(ctx, store.SubjectFilter{IDs: []string{}})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMongoUniqueIndexes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Bookmarks().Create(ctx, &models.Bookmark{StudentID: "st", QuestionID: "q"}))
	err := s.Bookmarks().Create(ctx, &models.Bookmark{StudentID: "st", QuestionID: "q"})
	assert.True(t, store.IsDuplicate(err))

	require.NoError(t, s.Completions().Create(ctx, &models.TopicCompletion{StudentID: "st", TopicID: "t", CompletedAt: now()}))
	err = s.Completions().Create(ctx, &models.TopicCompletion{StudentID: "st", TopicID: "t", CompletedAt: now()})
	assert.True(t, store.IsDuplicate(err))

	_, err = s.Courses().Get(ctx, "missing")
	assert.True(t, store.IsNotFound(err))
}

func TestMongoCompletionKeepsStoredPrecision(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	tc := &models.TopicCompletion{StudentID: "st", TopicID: "t", CompletedAt: time.Now()}
	require.NoError(t, s.Completions().Create(ctx, tc))

	got, err := s.Completions().Find(ctx, "st", "t")
	require.NoError(t, err)
	assert.True(t, tc.CompletedAt.Equal(got.CompletedAt), "created %v, read %v", tc.CompletedAt, got.CompletedAt)
	assert.Zero(t, tc.CompletedAt.Nanosecond()%int(time.Millisecond))
}
