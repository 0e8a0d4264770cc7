// Package repositories holds the persistence adapter: one generic repository
// contract with a gorm/postgres backend and an in-memory backend.
package repositories

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("record not found")

// Entity is implemented by every stored model.
type Entity interface {
	TableName() string
	Key() string
	Created() time.Time
	// Field returns the value of a filterable or sortable column.
	Field(column string) (interface{}, bool)
}

// Repository is the storage contract shared by all entities. Update replaces
// every column except id and created_at.
type Repository[T Entity] interface {
	Create(ctx context.Context, entity T) error
	Get(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q Query) ([]T, error)
	Count(ctx context.Context, q Query) (int64, error)
}

// Query narrows List and Count. A query without ordering returns rows in
// creation order (created_at, then id, ascending).
type Query struct {
	Filters []Filter
	OrderBy []Order
	Limit   int
}

type Filter struct {
	Column string
	Value  interface{}
}

type Order struct {
	Column string
	Desc   bool
}

// Where builds a query with equality filters given as column/value pairs.
func Where(column string, value interface{}) Query {
	return Query{Filters: []Filter{{Column: column, Value: value}}}
}

func (q Query) And(column string, value interface{}) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Column: column, Value: value})
	return q
}

func (q Query) Asc(column string) Query {
	q.OrderBy = append(append([]Order(nil), q.OrderBy...), Order{Column: column})
	return q
}

func (q Query) Desc(column string) Query {
	q.OrderBy = append(append([]Order(nil), q.OrderBy...), Order{Column: column, Desc: true})
	return q
}

func (q Query) Take(limit int) Query {
	q.Limit = limit
	return q
}

var defaultOrder = []Order{{Column: "created_at"}, {Column: "id"}}

func (q Query) ordering() []Order {
	if len(q.OrderBy) == 0 {
		return defaultOrder
	}
	return q.OrderBy
}
