package gormstore

import (
	"context"

	"prepcourse/models"
)

type studentRepo struct {
	crud[models.Student]
}

// CreateMany inserts all students in one statement; a duplicate email
// rejects the whole batch.
func (r studentRepo) CreateMany(ctx context.Context, students []*models.Student) error {
	if len(students) == 0 {
		return nil
	}
	return translate(r.db.WithContext(ctx).Create(&students).Error, "create students")
}

func (r studentRepo) List(ctx context.Context, includeDeleted bool) ([]models.Student, error) {
	out := []models.Student{}
	q := r.db.WithContext(ctx).Order("created_at desc")
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, translate(err, "list students")
	}
	return out, nil
}

func (r studentRepo) Count(ctx context.Context, includeDeleted bool) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&models.Student{})
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}
	err := q.Count(&n).Error
	return n, translate(err, "count students")
}
