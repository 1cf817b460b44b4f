// Package mongostore implements store.Store on MongoDB. Documents use string
// uuids as _id so ids are interchangeable with the SQL backends.
package mongostore

import (
	"context"
	"time"

	"prepcourse/models"
	"prepcourse/store"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type Options struct {
	MaxPoolSize uint64
	MinPoolSize uint64
}

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ store.Store = (*Store)(nil)

// Open connects to uri, verifies the connection and selects database dbName.
func Open(ctx context.Context, uri, dbName string, opts Options) (*Store, error) {
	clientOpts := options.Client().ApplyURI(uri)
	if opts.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(opts.MaxPoolSize)
	}
	if opts.MinPoolSize > 0 {
		clientOpts.SetMinPoolSize(opts.MinPoolSize)
	}
	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "connect to MongoDB")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(err, "ping MongoDB")
	}
	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) Courses() store.CourseRepository {
	return courseRepo{newCrud[models.Course](s.db, models.CollectionCourses, "course")}
}

func (s *Store) Subjects() store.SubjectRepository {
	return subjectRepo{newCrud[models.Subject](s.db, models.CollectionSubjects, "subject")}
}

func (s *Store) Topics() store.TopicRepository {
	return topicRepo{newCrud[models.Topic](s.db, models.CollectionTopics, "topic")}
}

func (s *Store) Questions() store.QuestionRepository {
	return questionRepo{newCrud[models.Question](s.db, models.CollectionQuestions, "question")}
}

func (s *Store) Students() store.StudentRepository {
	return studentRepo{newCrud[models.Student](s.db, models.CollectionStudents, "student")}
}

func (s *Store) Bookmarks() store.BookmarkRepository {
	return bookmarkRepo{coll: s.db.Collection(models.CollectionBookmarks)}
}

func (s *Store) Completions() store.CompletionRepository {
	return completionRepo{coll: s.db.Collection(models.CollectionTopicCompletions)}
}

// Transaction runs fn against the same store. Standalone servers have no
// multi-document transactions, so a failure inside fn is not rolled back.
func (s *Store) Transaction(ctx context.Context, fn func(tx store.Store) error) error {
	return fn(s)
}

func (s *Store) Migrate(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	collections := map[string][]mongo.IndexModel{
		models.CollectionSubjects: {
			{Keys: bson.D{{Key: "courseId", Value: 1}}},
		},
		models.CollectionTopics: {
			{Keys: bson.D{{Key: "subject", Value: 1}}},
		},
		models.CollectionQuestions: {
			{Keys: bson.D{{Key: "topic", Value: 1}}},
		},
		models.CollectionStudents: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		models.CollectionBookmarks: {
			{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "questionId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		models.CollectionTopicCompletions: {
			{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "topicId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "completedAt", Value: -1}}},
		},
	}

	for name, indexes := range collections {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return errors.Wrapf(err, "create indexes for %s", name)
		}
	}
	log.Info("MongoDB indexes ensured")
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return errors.Wrap(s.client.Ping(ctx, nil), "ping MongoDB")
}

func (s *Store) Close(ctx context.Context) error {
	return errors.Wrap(s.client.Disconnect(ctx), "disconnect MongoDB")
}

func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return errors.Wrap(store.ErrNotFound, op)
	case mongo.IsDuplicateKeyError(err):
		return errors.Wrap(store.ErrDuplicate, op)
	}
	return errors.Wrap(err, op)
}

// inFilter mirrors the id-set rule of the store filters: nil is no
// constraint, empty matches nothing.
func inFilter(filter bson.M, field string, ids []string) bool {
	if ids == nil {
		return true
	}
	if len(ids) == 0 {
		return false
	}
	filter[field] = bson.M{"$in": ids}
	return true
}

// now matches the millisecond precision Mongo stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
