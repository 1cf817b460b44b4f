package gormstore

import (
	"context"

	"prepcourse/store"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// crud holds the id-keyed operations every catalog repository shares.
type crud[T any] struct {
	db     *gorm.DB
	entity string
}

func (r crud[T]) Create(ctx context.Context, v *T) error {
	return translate(r.db.WithContext(ctx).Create(v).Error, "create "+r.entity)
}

func (r crud[T]) Get(ctx context.Context, id string) (*T, error) {
	var v T
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, translate(err, "get "+r.entity)
	}
	return &v, nil
}

func (r crud[T]) FindByIDs(ctx context.Context, ids []string) ([]T, error) {
	out := []T{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, translate(err, "find "+r.entity+"s")
	}
	return out, nil
}

func (r crud[T]) Update(ctx context.Context, v *T) error {
	return translate(r.db.WithContext(ctx).Save(v).Error, "update "+r.entity)
}

func (r crud[T]) Delete(ctx context.Context, id string) error {
	var v T
	res := r.db.WithContext(ctx).Delete(&v, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "delete "+r.entity)
	}
	if res.RowsAffected == 0 {
		return errors.Wrap(store.ErrNotFound, "delete "+r.entity)
	}
	return nil
}
