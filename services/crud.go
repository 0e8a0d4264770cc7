package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitmanager-backend/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Input is a client-supplied create shape that can assemble its full entity.
type Input[T any] interface {
	Build(id string, createdAt time.Time) T
}

// CRUDService implements create, read, full-replace update and hard delete for
// one entity type.
type CRUDService[T repositories.Entity, I Input[T]] struct {
	repo   repositories.Repository[T]
	entity string
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

func NewCRUDService[T repositories.Entity, I Input[T]](repo repositories.Repository[T], entity string, logger *zap.Logger, opts ...Option) *CRUDService[T, I] {
	o := buildOptions(opts)
	return &CRUDService[T, I]{
		repo:   repo,
		entity: entity,
		logger: logger.With(zap.String("entity", entity)),
		now:    o.now,
		newID:  o.newID,
	}
}

func (s *CRUDService[T, I]) Create(ctx context.Context, in I) (T, error) {
	entity := in.Build(s.newID(), createdAt(s.now()))
	if err := s.repo.Create(ctx, entity); err != nil {
		s.logger.Error("Failed to create record", zap.String("id", entity.Key()), zap.Error(err))
		var zero T
		return zero, fmt.Errorf("create %s: %w", s.entity, err)
	}
	s.logger.Debug("Record created", zap.String("id", entity.Key()))
	return entity, nil
}

func (s *CRUDService[T, I]) List(ctx context.Context) ([]T, error) {
	return s.list(ctx, repositories.Query{})
}

func (s *CRUDService[T, I]) GetByID(ctx context.Context, id string) (T, error) {
	entity, err := s.repo.Get(ctx, id)
	if err != nil {
		return entity, s.wrap("get", id, err)
	}
	return entity, nil
}

// Update replaces every field of the stored entity, keeping id and created_at.
func (s *CRUDService[T, I]) Update(ctx context.Context, id string, in I) (T, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		var zero T
		return zero, s.wrap("update", id, err)
	}
	entity := in.Build(id, existing.Created())
	if err := s.repo.Update(ctx, entity); err != nil {
		var zero T
		return zero, s.wrap("update", id, err)
	}
	return entity, nil
}

// Delete removes the entity. Dependent rows are left untouched.
func (s *CRUDService[T, I]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.wrap("delete", id, err)
	}
	return nil
}

func (s *CRUDService[T, I]) list(ctx context.Context, q repositories.Query) ([]T, error) {
	entities, err := s.repo.List(ctx, q)
	if err != nil {
		s.logger.Error("Failed to list records", zap.Error(err))
		return nil, fmt.Errorf("list %s: %w", s.entity, err)
	}
	return entities, nil
}

func (s *CRUDService[T, I]) wrap(op, id string, err error) error {
	if !errors.Is(err, repositories.ErrNotFound) {
		s.logger.Error("Storage failure", zap.String("op", op), zap.String("id", id), zap.Error(err))
	}
	return fmt.Errorf("%s %s %s: %w", op, s.entity, id, err)
}

// createdAt rounds now up to the microsecond. postgres keeps microseconds,
// and rounding down could place created_at before the request began.
func createdAt(now time.Time) time.Time {
	now = now.UTC()
	t := now.Truncate(time.Microsecond)
	if t.Before(now) {
		t = t.Add(time.Microsecond)
	}
	return t
}

// Option customizes service construction.
type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() string
}

// WithClock replaces time.Now, e.g. for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces uuid.NewString.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
