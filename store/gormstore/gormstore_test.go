package gormstore

import (
	"context"
	"testing"
	"time"

	"prepcourse/models"
	"prepcourse/store"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestCourseCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	course := &models.Course{Title: "Backend", Duration: "8", Level: models.LevelIntermediate}
	require.NoError(t, s.Courses().Create(ctx, course))
	assert.NotEmpty(t, course.ID)
	assert.False(t, course.CreatedAt.IsZero())

	got, err := s.Courses().Get(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend", got.Title)
	assert.Equal(t, models.LevelIntermediate, got.Level)

	got.Title = "Backend Engineering"
	require.NoError(t, s.Courses().Update(ctx, got))
	got, err = s.Courses().Get(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineering", got.Title)

	require.NoError(t, s.Courses().Delete(ctx, course.ID))
	_, err = s.Courses().Get(ctx, course.ID)
	assert.True(t, store.IsNotFound(err))
	assert.True(t, store.IsNotFound(s.Courses().Delete(ctx, course.ID)))
}

func TestSubjectFilterSemantics(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	course := &models.Course{Title: "Backend", Duration: "8"}
	require.NoError(t, s.Courses().Create(ctx, course))
	linked := &models.Subject{Title: "APIs", CourseID: &course.ID}
	loose := &models.Subject{Title: "Loose"}
	require.NoError(t, s.Subjects().Create(ctx, linked))
	require.NoError(t, s.Subjects().Create(ctx, loose))

	n, err := s.Subjects().Count(ctx, store.SubjectFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = s.Subjects().Count(ctx, store.SubjectFilter{CourseID: &course.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.Subjects().Count(ctx, store.SubjectFilter{IDs: []string{}})
	require.NoError(t, err)
	assert.Zero(t, n)

	ids, err := s.Subjects().IDs(ctx, store.SubjectFilter{CourseID: &course.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{linked.ID}, ids)

	list, err := s.Subjects().List(ctx, store.SubjectFilter{IDs: []string{loose.ID}})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].CourseID)
}

func TestSubjectRelinking(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s1 := &models.Subject{Title: "S1"}
	s2 := &models.Subject{Title: "S2"}
	require.NoError(t, s.Subjects().Create(ctx, s1))
	require.NoError(t, s.Subjects().Create(ctx, s2))

	require.NoError(t, s.Subjects().SetCourse(ctx, []string{s1.ID, s2.ID}, "course-1"))
	courseID := "course-1"
	n, err := s.Subjects().Count(ctx, store.SubjectFilter{CourseID: &courseID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, s.Subjects().ClearCourse(ctx, courseID))
	got, err := s.Subjects().Get(ctx, s1.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CourseID)
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	boom := errors.New("boom")
	err := s.Transaction(ctx, func(tx store.Store) error {
		require.NoError(t, tx.Courses().Create(ctx, &models.Course{Title: "Temp", Duration: "1"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := s.Courses().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBookmarkUniqueness(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Bookmarks().Create(ctx, &models.Bookmark{StudentID: "st", QuestionID: "q"}))
	err := s.Bookmarks().Create(ctx, &models.Bookmark{StudentID: "st", QuestionID: "q"})
	assert.True(t, store.IsDuplicate(err), "got %v", err)

	b, err := s.Bookmarks().Find(ctx, "st", "q")
	require.NoError(t, err)
	assert.Equal(t, "q", b.QuestionID)

	require.NoError(t, s.Bookmarks().Delete(ctx, "st", "q"))
	assert.True(t, store.IsNotFound(s.Bookmarks().Delete(ctx, "st", "q")))
}

func TestBookmarksNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	base := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	for i, q := range []string{"q1", "q2", "q3"} {
		b := &models.Bookmark{StudentID: "st", QuestionID: q}
		b.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, s.Bookmarks().Create(ctx, b))
	}

	list, err := s.Bookmarks().ListByStudent(ctx, "st")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "q3", list[0].QuestionID)
	assert.Equal(t, "q1", list[2].QuestionID)
}

func TestCompletionRange(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	day := func(d int) time.Time { return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC) }
	for i, d := range []int{1, 5, 9} {
		require.NoError(t, s.Completions().Create(ctx, &models.TopicCompletion{
			StudentID:   "st",
			TopicID:     []string{"t1", "t2", "t3"}[i],
			CompletedAt: day(d),
		}))
	}
	require.NoError(t, s.Completions().Create(ctx, &models.TopicCompletion{
		StudentID: "other", TopicID: "t1", CompletedAt: day(5),
	}))

	from, to := day(5), day(9)
	list, err := s.Completions().List(ctx, store.CompletionFilter{StudentID: "st", From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "t3", list[0].TopicID)
	assert.Equal(t, "t2", list[1].TopicID)

	err = s.Completions().Create(ctx, &models.TopicCompletion{StudentID: "st", TopicID: "t1", CompletedAt: day(20)})
	assert.True(t, store.IsDuplicate(err))
}

func TestStudentsSoftDeleteListing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	students := []*models.Student{
		{Name: "Asha", Email: "asha@example.com", Phone: "1"},
		{Name: "Ben", Email: "ben@example.com", Phone: "2", IsDeleted: true},
	}
	require.NoError(t, s.Students().CreateMany(ctx, students))

	active, err := s.Students().List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := s.Students().List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	err = s.Students().CreateMany(ctx, []*models.Student{{Name: "Dup", Email: "asha@example.com", Phone: "3"}})
	assert.True(t, store.IsDuplicate(err))
}

type traceRecorder struct {
	logger.Interface
	errs []error
}

func (r *traceRecorder) Trace(_ context.Context, _ time.Time, _ func() (string, int64), err error) {
	r.errs = append(r.errs, err)
}

func TestQuietDuplicatesHidesUniqueViolations(t *testing.T) {
	rec := &traceRecorder{Interface: logger.Discard}
	l := quietDuplicates{rec}
	sql := func() (string, int64) { return "INSERT", 0 }

	l.Trace(context.Background(), time.Now(), sql, errors.Wrap(gorm.ErrDuplicatedKey, "insert"))
	boom := errors.New("disk full")
	l.Trace(context.Background(), time.Now(), sql, boom)

	require.Len(t, rec.errs, 2)
	assert.NoError(t, rec.errs[0])
	assert.Equal(t, boom, rec.errs[1])
	assert.IsType(t, quietDuplicates{}, l.LogMode(logger.Info))
}

func TestDuplicateInsertStillFails(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Completions().Create(ctx, &models.TopicCompletion{StudentID: "st", TopicID: "t", CompletedAt: time.Now()}))
	err := s.Completions().Create(ctx, &models.TopicCompletion{StudentID: "st", TopicID: "t", CompletedAt: time.Now()})
	assert.True(t, store.IsDuplicate(err))
}
