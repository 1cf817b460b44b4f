// Package gormstore implements store.Store on GORM. It serves PostgreSQL,
// MySQL and SQLite through their GORM dialectors.
package gormstore

import (
	"context"
	"time"

	"prepcourse/models"
	"prepcourse/store"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the connection pool.
type Options struct {
	MaxOpenConns int
	MaxIdleConns int
}

type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// quietDuplicates drops unique-index violations from query logs. Callers
// receive them as store.ErrDuplicate and treat them as idempotent hits.
type quietDuplicates struct {
	logger.Interface
}

func (l quietDuplicates) LogMode(level logger.LogLevel) logger.Interface {
	return quietDuplicates{l.Interface.LogMode(level)}
}

func (l quietDuplicates) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = nil
	}
	l.Interface.Trace(ctx, begin, fc, err)
}

// Open connects through dialector and configures the pool. Timestamps are
// written in UTC so range filters compare consistently on every dialect.
func Open(dialector gorm.Dialector, opts Options) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger: quietDuplicates{logger.New(
			log.Default().StandardLog(log.StandardLogOptions{ForceLevel: log.WarnLevel}),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		)},
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get database handle")
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(0)

	return New(db), nil
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for callers that need raw access.
func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) Courses() store.CourseRepository {
	return courseRepo{crud[models.Course]{db: s.db, entity: "course"}}
}

func (s *Store) Subjects() store.SubjectRepository {
	return subjectRepo{crud[models.Subject]{db: s.db, entity: "subject"}}
}

func (s *Store) Topics() store.TopicRepository {
	return topicRepo{crud[models.Topic]{db: s.db, entity: "topic"}}
}

func (s *Store) Questions() store.QuestionRepository {
	return questionRepo{crud[models.Question]{db: s.db, entity: "question"}}
}

func (s *Store) Students() store.StudentRepository {
	return studentRepo{crud[models.Student]{db: s.db, entity: "student"}}
}

func (s *Store) Bookmarks() store.BookmarkRepository {
	return bookmarkRepo{db: s.db}
}

func (s *Store) Completions() store.CompletionRepository {
	return completionRepo{db: s.db}
}

func (s *Store) Transaction(ctx context.Context, fn func(tx store.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

func (s *Store) Migrate(ctx context.Context) error {
	log.Info("Running migrations...")
	err := s.db.WithContext(ctx).AutoMigrate(
		&models.Course{},
		&models.Subject{},
		&models.Topic{},
		&models.Question{},
		&models.Student{},
		&models.Bookmark{},
		&models.TopicCompletion{},
	)
	if err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	log.Info("Migrations completed successfully.")
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "get database handle")
	}
	return errors.Wrap(sqlDB.PingContext(ctx), "ping database")
}

func (s *Store) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "get database handle")
	}
	return errors.Wrap(sqlDB.Close(), "close database")
}

// translate maps GORM errors onto the store sentinels and adds context.
func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.Wrap(store.ErrNotFound, op)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Wrap(store.ErrDuplicate, op)
	}
	return errors.Wrap(err, op)
}

// whereIn applies an id-set constraint. ok is false when ids is an empty
// non-nil slice, meaning the query can match nothing.
func whereIn(q *gorm.DB, column string, ids []string) (*gorm.DB, bool) {
	if ids == nil {
		return q, true
	}
	if len(ids) == 0 {
		return q, false
	}
	return q.Where(column+" IN ?", ids), true
}
