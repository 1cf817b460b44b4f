package mongostore

import (
	"context"
	"time"

	"prepcourse/models"
	"prepcourse/store"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type bookmarkRepo struct {
	coll *mongo.Collection
}

func (r bookmarkRepo) Create(ctx context.Context, b *models.Bookmark) error {
	b.Stamp(now())
	_, err := r.coll.InsertOne(ctx, b)
	return translate(err, "create bookmark")
}

func (r bookmarkRepo) Find(ctx context.Context, studentID, questionID string) (*models.Bookmark, error) {
	var b models.Bookmark
	err := r.coll.FindOne(ctx, bson.M{"studentId": studentID, "questionId": questionID}).Decode(&b)
	if err != nil {
		return nil, translate(err, "find bookmark")
	}
	return &b, nil
}

func (r bookmarkRepo) Delete(ctx context.Context, studentID, questionID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"studentId": studentID, "questionId": questionID})
	if err != nil {
		return translate(err, "delete bookmark")
	}
	if res.DeletedCount == 0 {
		return errors.Wrap(store.ErrNotFound, "delete bookmark")
	}
	return nil
}

func (r bookmarkRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Bookmark, error) {
	cur, err := r.coll.Find(ctx, bson.M{"studentId": studentID}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, translate(err, "list bookmarks")
	}
	out := []models.Bookmark{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, translate(err, "decode bookmarks")
	}
	return out, nil
}

func (r bookmarkRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return n, translate(err, "count bookmarks")
}

type completionRepo struct {
	coll *mongo.Collection
}

// Create stores CompletedAt at the millisecond precision BSON dates keep, so
// the returned record matches later reads.
func (r completionRepo) Create(ctx context.Context, tc *models.TopicCompletion) error {
	tc.Stamp(now())
	tc.CompletedAt = tc.CompletedAt.UTC().Truncate(time.Millisecond)
	_, err := r.coll.InsertOne(ctx, tc)
	return translate(err, "create completion")
}

func (r completionRepo) Find(ctx context.Context, studentID, topicID string) (*models.TopicCompletion, error) {
	var tc models.TopicCompletion
	err := r.coll.FindOne(ctx, bson.M{"studentId": studentID, "topicId": topicID}).Decode(&tc)
	if err != nil {
		return nil, translate(err, "find completion")
	}
	return &tc, nil
}

func (r completionRepo) List(ctx context.Context, f store.CompletionFilter) ([]models.TopicCompletion, error) {
	filter := bson.M{}
	if f.StudentID != "" {
		filter["studentId"] = f.StudentID
	}
	if f.From != nil || f.To != nil {
		bounds := bson.M{}
		if f.From != nil {
			bounds["$gte"] = f.From.UTC()
		}
		if f.To != nil {
			bounds["$lte"] = f.To.UTC()
		}
		filter["completedAt"] = bounds
	}

	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err, "list completions")
	}
	out := []models.TopicCompletion{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, translate(err, "decode completions")
	}
	return out, nil
}

func (r completionRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return n, translate(err, "count completions")
}
