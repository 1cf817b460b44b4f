package mongostore

import (
	"context"

	"prepcourse/models"
	"prepcourse/store"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	newestFirst = bson.D{{Key: "createdAt", Value: -1}}
	oldestFirst = bson.D{{Key: "createdAt", Value: 1}}
)

type courseRepo struct {
	crud[models.Course, *models.Course]
}

func (r courseRepo) List(ctx context.Context) ([]models.Course, error) {
	return r.find(ctx, bson.M{}, newestFirst)
}

func (r courseRepo) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{})
}

type subjectRepo struct {
	crud[models.Subject, *models.Subject]
}

func subjectQuery(f store.SubjectFilter) (bson.M, bool) {
	filter := bson.M{}
	if f.CourseID != nil {
		filter["courseId"] = *f.CourseID
	}
	return filter, inFilter(filter, "_id", f.IDs)
}

func (r subjectRepo) List(ctx context.Context, f store.SubjectFilter) ([]models.Subject, error) {
	filter, ok := subjectQuery(f)
	if !ok {
		return []models.Subject{}, nil
	}
	return r.find(ctx, filter, oldestFirst)
}

func (r subjectRepo) Count(ctx context.Context, f store.SubjectFilter) (int64, error) {
	filter, ok := subjectQuery(f)
	if !ok {
		return 0, nil
	}
	return r.count(ctx, filter)
}

func (r subjectRepo) IDs(ctx context.Context, f store.SubjectFilter) ([]string, error) {
	filter, ok := subjectQuery(f)
	if !ok {
		return []string{}, nil
	}
	return r.ids(ctx, filter)
}

func (r subjectRepo) SetCourse(ctx context.Context, ids []string, courseID string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"courseId": courseID, "updatedAt": now()}},
	)
	return translate(err, "link subjects")
}

func (r subjectRepo) ClearCourse(ctx context.Context, courseID string) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"courseId": courseID},
		bson.M{"$unset": bson.M{"courseId": ""}, "$set": bson.M{"updatedAt": now()}},
	)
	return translate(err, "unlink subjects")
}

type topicRepo struct {
	crud[models.Topic, *models.Topic]
}

func topicQuery(f store.TopicFilter) (bson.M, bool) {
	filter := bson.M{}
	return filter, inFilter(filter, "subject", f.SubjectIDs)
}

func (r topicRepo) List(ctx context.Context, f store.TopicFilter) ([]models.Topic, error) {
	filter, ok := topicQuery(f)
	if !ok {
		return []models.Topic{}, nil
	}
	return r.find(ctx, filter, oldestFirst)
}

func (r topicRepo) Count(ctx context.Context, f store.TopicFilter) (int64, error) {
	filter, ok := topicQuery(f)
	if !ok {
		return 0, nil
	}
	return r.count(ctx, filter)
}

func (r topicRepo) IDs(ctx context.Context, f store.TopicFilter) ([]string, error) {
	filter, ok := topicQuery(f)
	if !ok {
		return []string{}, nil
	}
	return r.ids(ctx, filter)
}

type questionRepo struct {
	crud[models.Question, *models.Question]
}

func questionQuery(f store.QuestionFilter) (bson.M, bool) {
	filter := bson.M{}
	return filter, inFilter(filter, "topic", f.TopicIDs)
}

func (r questionRepo) List(ctx context.Context, f store.QuestionFilter) ([]models.Question, error) {
	filter, ok := questionQuery(f)
	if !ok {
		return []models.Question{}, nil
	}
	return r.find(ctx, filter, oldestFirst)
}

func (r questionRepo) Count(ctx context.Context, f store.QuestionFilter) (int64, error) {
	filter, ok := questionQuery(f)
	if !ok {
		return 0, nil
	}
	return r.count(ctx, filter)
}

type studentRepo struct {
	crud[models.Student, *models.Student]
}

func activeOnly(includeDeleted bool) bson.M {
	if includeDeleted {
		return bson.M{}
	}
	return bson.M{"isDeleted": bson.M{"$ne": true}}
}

// CreateMany is an ordered insert: on a duplicate email the students before
// the offending one stay inserted.
func (r studentRepo) CreateMany(ctx context.Context, students []*models.Student) error {
	if len(students) == 0 {
		return nil
	}
	ts := now()
	docs := make([]any, 0, len(students))
	for _, st := range students {
		st.Stamp(ts)
		docs = append(docs, st)
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return translate(err, "create students")
}

func (r studentRepo) List(ctx context.Context, includeDeleted bool) ([]models.Student, error) {
	return r.find(ctx, activeOnly(includeDeleted), newestFirst)
}

func (r studentRepo) Count(ctx context.Context, includeDeleted bool) (int64, error) {
	return r.count(ctx, activeOnly(includeDeleted))
}
