package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository stores T in the table named by T.TableName.
type GormRepository[T Entity] struct {
	db *gorm.DB
}

func NewGormRepository[T Entity](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

func (r *GormRepository[T]) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *GormRepository[T]) Create(ctx context.Context, entity T) error {
	return r.getDB(ctx).Create(&entity).Error
}

func (r *GormRepository[T]) Get(ctx context.Context, id string) (T, error) {
	var entity T
	err := r.getDB(ctx).Where(clause.Eq{Column: clause.Column{Name: "id"}, Value: id}).Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity, ErrNotFound
		}
		return entity, err
	}
	return entity, nil
}

func (r *GormRepository[T]) Update(ctx context.Context, entity T) error {
	result := r.getDB(ctx).Model(&entity).
		Select("*").
		Omit("id", "created_at").
		Updates(&entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository[T]) Delete(ctx context.Context, id string) error {
	result := r.getDB(ctx).Where(clause.Eq{Column: clause.Column{Name: "id"}, Value: id}).Delete(new(T))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository[T]) List(ctx context.Context, q Query) ([]T, error) {
	entities := make([]T, 0)
	tx := r.scoped(ctx, q)
	for _, o := range q.ordering() {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if err := tx.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", tableName[T](), err)
	}
	return entities, nil
}

func (r *GormRepository[T]) Count(ctx context.Context, q Query) (int64, error) {
	var n int64
	if err := r.scoped(ctx, q).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", tableName[T](), err)
	}
	return n, nil
}

func (r *GormRepository[T]) scoped(ctx context.Context, q Query) *gorm.DB {
	tx := r.getDB(ctx).Model(new(T))
	for _, f := range q.Filters {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: f.Column}, Value: f.Value})
	}
	return tx
}

func tableName[T Entity]() string {
	var zero T
	return zero.TableName()
}
