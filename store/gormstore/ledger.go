package gormstore

import (
	"context"

	"prepcourse/models"
	"prepcourse/store"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type bookmarkRepo struct {
	db *gorm.DB
}

func (r bookmarkRepo) Create(ctx context.Context, b *models.Bookmark) error {
	return translate(r.db.WithContext(ctx).Create(b).Error, "create bookmark")
}

func (r bookmarkRepo) Find(ctx context.Context, studentID, questionID string) (*models.Bookmark, error) {
	var b models.Bookmark
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND question_id = ?", studentID, questionID).
		First(&b).Error
	if err != nil {
		return nil, translate(err, "find bookmark")
	}
	return &b, nil
}

func (r bookmarkRepo) Delete(ctx context.Context, studentID, questionID string) error {
	res := r.db.WithContext(ctx).
		Where("student_id = ? AND question_id = ?", studentID, questionID).
		Delete(&models.Bookmark{})
	if res.Error != nil {
		return translate(res.Error, "delete bookmark")
	}
	if res.RowsAffected == 0 {
		return errors.Wrap(store.ErrNotFound, "delete bookmark")
	}
	return nil
}

func (r bookmarkRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Bookmark, error) {
	out := []models.Bookmark{}
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at desc").
		Find(&out).Error
	if err != nil {
		return nil, translate(err, "list bookmarks")
	}
	return out, nil
}

func (r bookmarkRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Bookmark{}).Count(&n).Error
	return n, translate(err, "count bookmarks")
}

type completionRepo struct {
	db *gorm.DB
}

func (r completionRepo) Create(ctx context.Context, tc *models.TopicCompletion) error {
	return translate(r.db.WithContext(ctx).Create(tc).Error, "create completion")
}

func (r completionRepo) Find(ctx context.Context, studentID, topicID string) (*models.TopicCompletion, error) {
	var tc models.TopicCompletion
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND topic_id = ?", studentID, topicID).
		First(&tc).Error
	if err != nil {
		return nil, translate(err, "find completion")
	}
	return &tc, nil
}

func (r completionRepo) List(ctx context.Context, f store.CompletionFilter) ([]models.TopicCompletion, error) {
	out := []models.TopicCompletion{}
	q := r.db.WithContext(ctx)
	if f.StudentID != "" {
		q = q.Where("student_id = ?", f.StudentID)
	}
	if f.From != nil {
		q = q.Where("completed_at >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("completed_at <= ?", f.To.UTC())
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if err := q.Order("completed_at desc").Find(&out).Error; err != nil {
		return nil, translate(err, "list completions")
	}
	return out, nil
}

func (r completionRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.TopicCompletion{}).Count(&n).Error
	return n, translate(err, "count completions")
}
