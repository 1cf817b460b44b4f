package gormstore

import (
	"context"

	"prepcourse/models"
	"prepcourse/store"

	"gorm.io/gorm"
)

type courseRepo struct {
	crud[models.Course]
}

func (r courseRepo) List(ctx context.Context) ([]models.Course, error) {
	out := []models.Course{}
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&out).Error; err != nil {
		return nil, translate(err, "list courses")
	}
	return out, nil
}

func (r courseRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Course{}).Count(&n).Error
	return n, translate(err, "count courses")
}

type subjectRepo struct {
	crud[models.Subject]
}

func (r subjectRepo) scope(ctx context.Context, f store.SubjectFilter) (q *gorm.DB, ok bool) {
	q = r.db.WithContext(ctx).Model(&models.Subject{})
	if f.CourseID != nil {
		q = q.Where("course_id = ?", *f.CourseID)
	}
	return whereIn(q, "id", f.IDs)
}

func (r subjectRepo) List(ctx context.Context, f store.SubjectFilter) ([]models.Subject, error) {
	out := []models.Subject{}
	q, ok := r.scope(ctx, f)
	if !ok {
		return out, nil
	}
	if err := q.Order("created_at asc").Find(&out).Error; err != nil {
		return nil, translate(err, "list subjects")
	}
	return out, nil
}

func (r subjectRepo) Count(ctx context.Context, f store.SubjectFilter) (int64, error) {
	var n int64
	q, ok := r.scope(ctx, f)
	if !ok {
		return 0, nil
	}
	err := q.Count(&n).Error
	return n, translate(err, "count subjects")
}

func (r subjectRepo) IDs(ctx context.Context, f store.SubjectFilter) ([]string, error) {
	ids := []string{}
	q, ok := r.scope(ctx, f)
	if !ok {
		return ids, nil
	}
	if err := q.Pluck("id", &ids).Error; err != nil {
		return nil, translate(err, "list subject ids")
	}
	return ids, nil
}

func (r subjectRepo) SetCourse(ctx context.Context, ids []string, courseID string) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Model(&models.Subject{}).
		Where("id IN ?", ids).
		Update("course_id", courseID).Error
	return translate(err, "link subjects")
}

func (r subjectRepo) ClearCourse(ctx context.Context, courseID string) error {
	err := r.db.WithContext(ctx).Model(&models.Subject{}).
		Where("course_id = ?", courseID).
		Update("course_id", nil).Error
	return translate(err, "unlink subjects")
}

type topicRepo struct {
	crud[models.Topic]
}

func (r topicRepo) scope(ctx context.Context, f store.TopicFilter) (*gorm.DB, bool) {
	return whereIn(r.db.WithContext(ctx).Model(&models.Topic{}), "subject_id", f.SubjectIDs)
}

func (r topicRepo) List(ctx context.Context, f store.TopicFilter) ([]models.Topic, error) {
	out := []models.Topic{}
	q, ok := r.scope(ctx, f)
	if !ok {
		return out, nil
	}
	if err := q.Order("created_at asc").Find(&out).Error; err != nil {
		return nil, translate(err, "list topics")
	}
	return out, nil
}

func (r topicRepo) Count(ctx context.Context, f store.TopicFilter) (int64, error) {
	var n int64
	q, ok := r.scope(ctx, f)
	if !ok {
		return 0, nil
	}
	err := q.Count(&n).Error
	return n, translate(err, "count topics")
}

func (r topicRepo) IDs(ctx context.Context, f store.TopicFilter) ([]string, error) {
	ids := []string{}
	q, ok := r.scope(ctx, f)
	if !ok {
		return ids, nil
	}
	if err := q.Pluck("id", &ids).Error; err != nil {
		return nil, translate(err, "list topic ids")
	}
	return ids, nil
}

type questionRepo struct {
	crud[models.Question]
}

func (r questionRepo) scope(ctx context.Context, f store.QuestionFilter) (*gorm.DB, bool) {
	return whereIn(r.db.WithContext(ctx).Model(&models.Question{}), "topic_id", f.TopicIDs)
}

func (r questionRepo) List(ctx context.Context, f store.QuestionFilter) ([]models.Question, error) {
	out := []models.Question{}
	q, ok := r.scope(ctx, f)
	if !ok {
		return out, nil
	}
	if err := q.Order("created_at asc").Find(&out).Error; err != nil {
		return nil, translate(err, "list questions")
	}
	return out, nil
}

func (r questionRepo) Count(ctx context.Context, f store.QuestionFilter) (int64, error) {
	var n int64
	q, ok := r.scope(ctx, f)
	if !ok {
		return 0, nil
	}
	err := q.Count(&n).Error
	return n, translate(err, "count questions")
}
