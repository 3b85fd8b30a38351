// Package dal implements the data access layer: a document-store gateway,
// generic staged-write repositories and the unit of work that flushes them.
//
// Reads execute immediately against the store. Writes are staged in
// per-repository buffers and applied only when the owning UnitOfWork is
// committed. A UnitOfWork and its repositories are request-scoped and not
// safe for concurrent use; all cross-request coordination happens in the
// store itself.
package dal

import (
	"context"

	"cinetick/internal/models"

	"github.com/google/uuid"
)

// primaryKey is the document store's primary-key field name. The public
// filter keys "id" and "metadata.id" normalize to it.
const primaryKey = "_id"

// Entity is anything persisted under a UUID primary key.
type Entity interface {
	EntityID() uuid.UUID
}

// Filter is an equality predicate on a single field. The zero Filter
// matches every document.
type Filter struct {
	Key   string
	Value interface{}
}

// IsEmpty reports whether the filter matches all documents.
func (f Filter) IsEmpty() bool { return f.Key == "" }

// FindOptions carries paging and ordering for Find. Order is a field name;
// Direction >= 0 sorts ascending, < 0 descending. An empty Order leaves the
// result unordered.
type FindOptions struct {
	Skip      int64
	Limit     int64
	Order     string
	Direction int
}

// Collection is the consumed surface of one document-store collection.
// UpsertMany replaces by primary key, inserting absent documents; its count
// is inserted + modified + upserted. DeleteMany deletes by id-set.
type Collection[T Entity] interface {
	Count(ctx context.Context, filter Filter) (int64, error)
	Find(ctx context.Context, filter Filter, opts FindOptions) ([]T, error)
	FindOne(ctx context.Context, filter Filter) (*T, error)
	InsertMany(ctx context.Context, items []T) (int64, error)
	UpsertMany(ctx context.Context, items []T) (int64, error)
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// SeatStore is the projections collection plus the conditional seat-counter
// updates the reservation workflow depends on. Both operations are atomic
// at the store: concurrent callers can never drive the counter negative or
// above the projection's total.
type SeatStore interface {
	Collection[models.MovieProjection]

	// DecrementSeats subtracts qty from available_seats iff
	// available_seats >= qty. Returns false when the guard fails or the
	// projection does not exist.
	DecrementSeats(ctx context.Context, id uuid.UUID, qty int32) (bool, error)

	// IncrementSeats adds qty back iff the result stays within total_seats.
	// Used to compensate a decrement whose follow-up commit failed.
	IncrementSeats(ctx context.Context, id uuid.UUID, qty int32) (bool, error)
}

// Stores resolves one collection handle per entity type. Implemented by the
// Mongo gateway and by the in-memory store used in tests.
type Stores interface {
	Projections() SeatStore
	Movies() Collection[models.Movie]
	Ratings() Collection[models.Rating]
	Organizations() Collection[models.Organization]
	Persons() Collection[models.Person]
	Tickets() Collection[models.Ticket]
	Users() Collection[models.User]
}
