package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"prepcourse/models"
	"prepcourse/store"
	"prepcourse/store/gormstore"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, opts ...Option) (*Service, store.Store) {
	t.Helper()
	st, err := gormstore.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	opts = append([]Option{WithSaltRound(4), WithLocation(time.UTC)}, opts...)
	return New(st, opts...), st
}

func ptr[T any](v T) *T { return &v }

func mustCourse(t *testing.T, svc *Service, title string) *models.Course {
	t.Helper()
	c, err := svc.CreateCourse(context.Background(), CourseInput{Title: ptr(title), Duration: ptr("8")})
	require.NoError(t, err)
	return c
}

func mustSubject(t *testing.T, svc *Service, title string, courseID string) *models.Subject {
	t.Helper()
	in := SubjectInput{Title: ptr(title)}
	if courseID != "" {
		in.CourseID = ptr(courseID)
	}
	s, err := svc.CreateSubject(context.Background(), in)
	require.NoError(t, err)
	return s
}

func mustTopic(t *testing.T, svc *Service, title, subjectID string) *models.Topic {
	t.Helper()
	tp, err := svc.CreateTopic(context.Background(), TopicInput{Topic: ptr(title), SubjectID: ptr(subjectID)})
	require.NoError(t, err)
	return tp
}

func mustQuestion(t *testing.T, svc *Service, text, topicID string) *models.Question {
	t.Helper()
	q, err := svc.CreateQuestion(context.Background(), QuestionInput{
		Question: ptr(text),
		Answer:   ptr("answer to " + text),
		TopicID:  ptr(topicID),
	})
	require.NoError(t, err)
	return q
}

// spyStore counts topic and question repository calls.
type spyStore struct {
	store.Store
	topicCalls    atomic.Int32
	questionCalls atomic.Int32
}

func (s *spyStore) Topics() store.TopicRepository {
	s.topicCalls.Add(1)
	return s.Store.Topics()
}

func (s *spyStore) Questions() store.QuestionRepository {
	s.questionCalls.Add(1)
	return s.Store.Questions()
}

// failingSubjects makes subject counting fail for one course.
type failingSubjects struct {
	store.SubjectRepository
	courseID string
}

func (f failingSubjects) Count(ctx context.Context, filter store.SubjectFilter) (int64, error) {
	if filter.CourseID != nil && *filter.CourseID == f.courseID {
		return 0, context.DeadlineExceeded
	}
	return f.SubjectRepository.Count(ctx, filter)
}

type failingStore struct {
	store.Store
	courseID string
}

func (f failingStore) Subjects() store.SubjectRepository {
	return failingSubjects{SubjectRepository: f.Store.Subjects(), courseID: f.courseID}
}

// missOnce wraps the ledger repositories so the first Find reports no
// record, as when a concurrent request inserts between Find and Create.
type missOnce struct {
	store.Store
	bookmarkMissed   *atomic.Bool
	completionMissed *atomic.Bool
}

func newMissOnce(st store.Store) missOnce {
	return missOnce{Store: st, bookmarkMissed: new(atomic.Bool), completionMissed: new(atomic.Bool)}
}

func (m missOnce) Bookmarks() store.BookmarkRepository {
	return missOnceBookmarks{BookmarkRepository: m.Store.Bookmarks(), missed: m.bookmarkMissed}
}

func (m missOnce) Completions() store.CompletionRepository {
	return missOnceCompletions{CompletionRepository: m.Store.Completions(), missed: m.completionMissed}
}

type missOnceBookmarks struct {
	store.BookmarkRepository
	missed *atomic.Bool
}

func (b missOnceBookmarks) Find(ctx context.Context, studentID, questionID string) (*models.Bookmark, error) {
	if b.missed.CompareAndSwap(false, true) {
		return nil, store.ErrNotFound
	}
	return b.BookmarkRepository.Find(ctx, studentID, questionID)
}

type missOnceCompletions struct {
	store.CompletionRepository
	missed *atomic.Bool
}

func (c missOnceCompletions) Find(ctx context.Context, studentID, topicID string) (*models.TopicCompletion, error) {
	if c.missed.CompareAndSwap(false, true) {
		return nil, store.ErrNotFound
	}
	return c.CompletionRepository.Find(ctx, studentID, topicID)
}

// failingLinks makes every SetCourse fail, including inside transactions.
type failingLinks struct {
	store.Store
}

func (f failingLinks) Subjects() store.SubjectRepository {
	return failingSetCourse{SubjectRepository: f.Store.Subjects()}
}

func (f failingLinks) Transaction(ctx context.Context, fn func(tx store.Store) error) error {
	return f.Store.Transaction(ctx, func(tx store.Store) error {
		return fn(failingLinks{Store: tx})
	})
}

type failingSetCourse struct {
	store.SubjectRepository
}

func (failingSetCourse) SetCourse(context.Context, []string, string) error {
	return context.DeadlineExceeded
}
