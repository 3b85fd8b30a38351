package dal

import (
	"context"

	"cinetick/internal/shared/apperr"
	"cinetick/pkg/dataparse"

	"github.com/google/uuid"
)

// DefaultPageSize is applied when a list request does not specify a count.
const DefaultPageSize = 100

// Repository is a per-entity read/write facade over one collection.
// Reads hit the store immediately; Add/Update/Remove only stage changes,
// which take effect when the owning UnitOfWork commits.
type Repository[T Entity] struct {
	coll       Collection[T]
	addList    []T
	updateList []T
	removeList []uuid.UUID
}

// NewRepository wraps a collection handle in a staged-write repository.
func NewRepository[T Entity](coll Collection[T]) *Repository[T] {
	return &Repository[T]{coll: coll}
}

func normalizeKey(key string) string {
	if key == "id" || key == "metadata.id" {
		return primaryKey
	}
	return key
}

// equalityFilter builds a typed equality filter from untyped key/value
// strings. The value's native type is inferred so the filter targets what
// the store actually holds.
func equalityFilter(key, value string) (Filter, error) {
	if key == "" {
		return Filter{}, apperr.InvalidArgumentf("filter key must not be empty")
	}
	if value == "" {
		return Filter{}, apperr.InvalidArgumentf("filter value must not be empty")
	}
	return Filter{Key: normalizeKey(key), Value: dataparse.Parse(value).Interface()}, nil
}

// Count returns the total number of documents in the collection.
func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	return r.coll.Count(ctx, Filter{})
}

// CountBy returns the number of documents whose key equals the parsed value.
func (r *Repository[T]) CountBy(ctx context.Context, key, value string) (int64, error) {
	filter, err := equalityFilter(key, value)
	if err != nil {
		return 0, err
	}
	return r.coll.Count(ctx, filter)
}

// List returns a page of documents. A non-positive count falls back to
// DefaultPageSize, a negative index to 0. When order is set, direction >= 0
// sorts ascending and < 0 descending.
func (r *Repository[T]) List(ctx context.Context, index, count int64, order string, direction int) ([]T, error) {
	return r.coll.Find(ctx, Filter{}, pageOptions(index, count, order, direction))
}

// ListBy is List with an equality filter applied first.
func (r *Repository[T]) ListBy(ctx context.Context, key, value string, index, count int64, order string, direction int) ([]T, error) {
	filter, err := equalityFilter(key, value)
	if err != nil {
		return nil, err
	}
	return r.coll.Find(ctx, filter, pageOptions(index, count, order, direction))
}

func pageOptions(index, count int64, order string, direction int) FindOptions {
	if index < 0 {
		index = 0
	}
	if count <= 0 {
		count = DefaultPageSize
	}
	return FindOptions{Skip: index, Limit: count, Order: order, Direction: direction}
}

// GetByID returns the document with the given id, or nil when absent.
// Absence is not an error at this layer.
func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	return r.coll.FindOne(ctx, Filter{Key: primaryKey, Value: id})
}

// Add stages a single insert.
func (r *Repository[T]) Add(item T) {
	r.addList = append(r.addList, item)
}

// AddMany stages a batch of inserts. A nil batch is rejected.
func (r *Repository[T]) AddMany(items []T) error {
	if items == nil {
		return apperr.InvalidArgumentf("items must not be nil")
	}
	r.addList = append(r.addList, items...)
	return nil
}

// Update stages a single upsert-by-id.
func (r *Repository[T]) Update(item T) {
	r.updateList = append(r.updateList, item)
}

// UpdateMany stages a batch of upserts. A nil batch is rejected.
func (r *Repository[T]) UpdateMany(items []T) error {
	if items == nil {
		return apperr.InvalidArgumentf("items must not be nil")
	}
	r.updateList = append(r.updateList, items...)
	return nil
}

// Remove stages a single delete-by-id.
func (r *Repository[T]) Remove(id uuid.UUID) {
	r.removeList = append(r.removeList, id)
}

// RemoveMany stages a batch of deletes. A nil batch is rejected.
func (r *Repository[T]) RemoveMany(ids []uuid.UUID) error {
	if ids == nil {
		return apperr.InvalidArgumentf("ids must not be nil")
	}
	r.removeList = append(r.removeList, ids...)
	return nil
}

// PendingChanges returns the number of staged, uncommitted operations.
func (r *Repository[T]) PendingChanges() int {
	return len(r.addList) + len(r.updateList) + len(r.removeList)
}

// commit flushes staged operations in fixed phase order: adds, updates,
// removes. Each buffer is cleared after its phase succeeds; a failing phase
// leaves later buffers untouched and propagates. The returned count sums
// affected documents across the flushed phases.
func (r *Repository[T]) commit(ctx context.Context) (int64, error) {
	var total int64

	if len(r.addList) > 0 {
		n, err := r.coll.InsertMany(ctx, r.addList)
		total += n
		if err != nil {
			return total, apperr.Storef("bulk insert", err)
		}
		r.addList = nil
	}

	if len(r.updateList) > 0 {
		n, err := r.coll.UpsertMany(ctx, r.updateList)
		total += n
		if err != nil {
			return total, apperr.Storef("bulk upsert", err)
		}
		r.updateList = nil
	}

	if len(r.removeList) > 0 {
		n, err := r.coll.DeleteMany(ctx, r.removeList)
		total += n
		if err != nil {
			return total, apperr.Storef("bulk delete", err)
		}
		r.removeList = nil
	}

	return total, nil
}
