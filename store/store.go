// Package store is the document store access layer. Services depend only on
// the interfaces declared here; gormstore and mongostore provide backends.
package store

import (
	"context"
	"time"

	"prepcourse/models"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when a lookup by id or key matches nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

// Id slices in filters follow one rule: nil places no constraint, a non-nil
// empty slice matches nothing.

type SubjectFilter struct {
	CourseID *string
	IDs      []string
}

type TopicFilter struct {
	SubjectIDs []string
}

type QuestionFilter struct {
	TopicIDs []string
}

// CompletionFilter bounds are inclusive. Zero values place no constraint.
// Limit caps results; 0 means unlimited.
type CompletionFilter struct {
	StudentID string
	From      *time.Time
	To        *time.Time
	Limit     int
}

type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	Get(ctx context.Context, id string) (*models.Course, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type SubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	Get(ctx context.Context, id string) (*models.Subject, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Subject, error)
	List(ctx context.Context, filter SubjectFilter) ([]models.Subject, error)
	Count(ctx context.Context, filter SubjectFilter) (int64, error)
	IDs(ctx context.Context, filter SubjectFilter) ([]string, error)
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, id string) error
	// SetCourse points every subject in ids at courseID.
	SetCourse(ctx context.Context, ids []string, courseID string) error
	// ClearCourse unlinks every subject currently pointing at courseID.
	ClearCourse(ctx context.Context, courseID string) error
}

type TopicRepository interface {
	Create(ctx context.Context, topic *models.Topic) error
	Get(ctx context.Context, id string) (*models.Topic, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Topic, error)
	List(ctx context.Context, filter TopicFilter) ([]models.Topic, error)
	Count(ctx context.Context, filter TopicFilter) (int64, error)
	IDs(ctx context.Context, filter TopicFilter) ([]string, error)
	Update(ctx context.Context, topic *models.Topic) error
	Delete(ctx context.Context, id string) error
}

type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	Get(ctx context.Context, id string) (*models.Question, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Question, error)
	List(ctx context.Context, filter QuestionFilter) ([]models.Question, error)
	Count(ctx context.Context, filter QuestionFilter) (int64, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id string) error
}

type StudentRepository interface {
	CreateMany(ctx context.Context, students []*models.Student) error
	Get(ctx context.Context, id string) (*models.Student, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Student, error)
	List(ctx context.Context, includeDeleted bool) ([]models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Count(ctx context.Context, includeDeleted bool) (int64, error)
}

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *models.Bookmark) error
	Find(ctx context.Context, studentID, questionID string) (*models.Bookmark, error)
	Delete(ctx context.Context, studentID, questionID string) error
	// ListByStudent returns the student's bookmarks newest first.
	ListByStudent(ctx context.Context, studentID string) ([]models.Bookmark, error)
	Count(ctx context.Context) (int64, error)
}

type CompletionRepository interface {
	Create(ctx context.Context, completion *models.TopicCompletion) error
	Find(ctx context.Context, studentID, topicID string) (*models.TopicCompletion, error)
	// List returns matching completions ordered by CompletedAt descending.
	List(ctx context.Context, filter CompletionFilter) ([]models.TopicCompletion, error)
	Count(ctx context.Context) (int64, error)
}

// Store groups the repositories of one backend.
type Store interface {
	Courses() CourseRepository
	Subjects() SubjectRepository
	Topics() TopicRepository
	Questions() QuestionRepository
	Students() StudentRepository
	Bookmarks() BookmarkRepository
	Completions() CompletionRepository

	// Transaction runs fn against a Store bound to one unit of work. Backends
	// without multi-document transactions run fn directly.
	Transaction(ctx context.Context, fn func(tx Store) error) error
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsDuplicate(err error) bool { return errors.Is(err, ErrDuplicate) }
