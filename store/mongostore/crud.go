package mongostore

import (
	"context"
	"time"

	"prepcourse/store"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type document[T any] interface {
	*T
	Stamp(now time.Time)
	PrimaryKey() string
}

type crud[T any, P document[T]] struct {
	coll   *mongo.Collection
	entity string
}

func newCrud[T any, P document[T]](db *mongo.Database, collection, entity string) crud[T, P] {
	return crud[T, P]{coll: db.Collection(collection), entity: entity}
}

func (r crud[T, P]) Create(ctx context.Context, v *T) error {
	P(v).Stamp(now())
	_, err := r.coll.InsertOne(ctx, v)
	return translate(err, "create "+r.entity)
}

func (r crud[T, P]) Get(ctx context.Context, id string) (*T, error) {
	var v T
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		return nil, translate(err, "get "+r.entity)
	}
	return &v, nil
}

func (r crud[T, P]) FindByIDs(ctx context.Context, ids []string) ([]T, error) {
	out := []T{}
	if len(ids) == 0 {
		return out, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, nil)
}

func (r crud[T, P]) Update(ctx context.Context, v *T) error {
	p := P(v)
	p.Stamp(now())
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.PrimaryKey()}, v)
	if err != nil {
		return translate(err, "update "+r.entity)
	}
	if res.MatchedCount == 0 {
		return errors.Wrap(store.ErrNotFound, "update "+r.entity)
	}
	return nil
}

func (r crud[T, P]) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate(err, "delete "+r.entity)
	}
	if res.DeletedCount == 0 {
		return errors.Wrap(store.ErrNotFound, "delete "+r.entity)
	}
	return nil
}

func (r crud[T, P]) find(ctx context.Context, filter bson.M, sort bson.D) ([]T, error) {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err, "find "+r.entity+"s")
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, translate(err, "decode "+r.entity+"s")
	}
	return out, nil
}

func (r crud[T, P]) count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, filter)
	return n, translate(err, "count "+r.entity+"s")
}

func (r crud[T, P]) ids(ctx context.Context, filter bson.M) ([]string, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, translate(err, "find "+r.entity+" ids")
	}
	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, translate(err, "decode "+r.entity+" ids")
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}
