package repositories

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"
)

// MemoryRepository is a thread-safe in-process repository. Rows are kept in
// insertion order, which is also creation order.
type MemoryRepository[T Entity] struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]T
}

func NewMemoryRepository[T Entity]() *MemoryRepository[T] {
	return &MemoryRepository[T]{rows: make(map[string]T)}
}

func (m *MemoryRepository[T]) Create(_ context.Context, entity T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := entity.Key()
	if _, exists := m.rows[id]; exists {
		return fmt.Errorf("%s %s already exists", entity.TableName(), id)
	}
	m.rows[id] = entity
	m.order = append(m.order, id)
	return nil
}

func (m *MemoryRepository[T]) Get(_ context.Context, id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entity, ok := m.rows[id]
	if !ok {
		return entity, ErrNotFound
	}
	return entity, nil
}

func (m *MemoryRepository[T]) Update(_ context.Context, entity T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	original, ok := m.rows[entity.Key()]
	if !ok {
		return ErrNotFound
	}
	if !original.Created().Equal(entity.Created()) {
		return fmt.Errorf("%s %s: created_at is immutable", entity.TableName(), entity.Key())
	}
	m.rows[entity.Key()] = entity
	return nil
}

func (m *MemoryRepository[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	for i, key := range m.order {
		if key == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryRepository[T]) List(_ context.Context, q Query) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result, err := m.filter(q)
	if err != nil {
		return nil, err
	}
	if len(q.OrderBy) > 0 {
		var sortErr error
		sort.SliceStable(result, func(i, j int) bool {
			less, err := lessBy(result[i], result[j], q.OrderBy)
			if err != nil && sortErr == nil {
				sortErr = err
			}
			return less
		})
		if sortErr != nil {
			return nil, sortErr
		}
	}
	if q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}
	return result, nil
}

func (m *MemoryRepository[T]) Count(_ context.Context, q Query) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result, err := m.filter(q)
	if err != nil {
		return 0, err
	}
	return int64(len(result)), nil
}

func (m *MemoryRepository[T]) filter(q Query) ([]T, error) {
	result := make([]T, 0, len(m.order))
	for _, id := range m.order {
		entity := m.rows[id]
		match := true
		for _, f := range q.Filters {
			v, ok := entity.Field(f.Column)
			if !ok {
				return nil, fmt.Errorf("%s: unknown column %q", entity.TableName(), f.Column)
			}
			if normalize(v) != normalize(f.Value) {
				match = false
				break
			}
		}
		if match {
			result = append(result, entity)
		}
	}
	return result, nil
}

func lessBy[T Entity](a, b T, orders []Order) (bool, error) {
	for _, o := range orders {
		av, ok := a.Field(o.Column)
		if !ok {
			return false, fmt.Errorf("%s: unknown column %q", a.TableName(), o.Column)
		}
		bv, _ := b.Field(o.Column)
		c := compare(normalize(av), normalize(bv))
		if c == 0 {
			continue
		}
		if o.Desc {
			return c > 0, nil
		}
		return c < 0, nil
	}
	return false, nil
}

// normalize reduces named string and numeric types to their base kinds so
// that values coming from typed fields and untyped filters compare equal.
func normalize(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	if t, ok := v.(time.Time); ok {
		return t.UTC()
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		return rv.Bool()
	}
	return rv.Interface()
}

func compare(a, b interface{}) int {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}
	// nil sorts first, mirroring NULLS FIRST on ascending order
	switch {
	case a == nil && b != nil:
		return -1
	case a != nil && b == nil:
		return 1
	}
	return 0
}
