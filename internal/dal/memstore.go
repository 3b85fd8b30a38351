package dal

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"cinetick/internal/models"

	"github.com/google/uuid"
)

// MemStores is an in-memory Stores implementation. It backs the package
// tests and the tests of everything built on the unit of work; it honors
// the same contracts as the Mongo gateway, including atomic conditional
// seat updates and context cancellation.
type MemStores struct {
	projections   *MemSeatStore
	movies        *MemCollection[models.Movie]
	ratings       *MemCollection[models.Rating]
	organizations *MemCollection[models.Organization]
	persons       *MemCollection[models.Person]
	tickets       *MemCollection[models.Ticket]
	users         *MemCollection[models.User]
}

// NewMemStores returns an empty in-memory store set.
func NewMemStores() *MemStores {
	return &MemStores{
		projections:   &MemSeatStore{MemCollection: NewMemCollection[models.MovieProjection]()},
		movies:        NewMemCollection[models.Movie](),
		ratings:       NewMemCollection[models.Rating](),
		organizations: NewMemCollection[models.Organization](),
		persons:       NewMemCollection[models.Person](),
		tickets:       NewMemCollection[models.Ticket](),
		users:         NewMemCollection[models.User](),
	}
}

func (s *MemStores) Projections() SeatStore                     { return s.projections }
func (s *MemStores) Movies() Collection[models.Movie]           { return s.movies }
func (s *MemStores) Ratings() Collection[models.Rating]         { return s.ratings }
func (s *MemStores) Organizations() Collection[models.Organization] {
	return s.organizations
}
func (s *MemStores) Persons() Collection[models.Person]   { return s.persons }
func (s *MemStores) Tickets() Collection[models.Ticket]   { return s.tickets }
func (s *MemStores) Users() Collection[models.User]       { return s.users }
func (s *MemStores) TicketsMem() *MemCollection[models.Ticket] { return s.tickets }

// MemCollection is a thread-safe in-memory document collection keyed by
// entity id. Iteration follows insertion order so unordered finds stay
// deterministic.
type MemCollection[T Entity] struct {
	mu         sync.Mutex
	docs       map[uuid.UUID]T
	order      []uuid.UUID
	failInsert error
}

// NewMemCollection returns an empty collection.
func NewMemCollection[T Entity]() *MemCollection[T] {
	return &MemCollection[T]{docs: make(map[uuid.UUID]T)}
}

// FailInserts makes subsequent InsertMany calls fail with err. Test hook
// for exercising commit-failure paths. Pass nil to clear.
func (c *MemCollection[T]) FailInserts(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failInsert = err
}

func (c *MemCollection[T]) Count(ctx context.Context, f Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int64
	for _, id := range c.order {
		if matches(c.docs[id], f) {
			n++
		}
	}
	return n, nil
}

func (c *MemCollection[T]) Find(ctx context.Context, f Filter, o FindOptions) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	matched := []T{}
	for _, id := range c.order {
		if matches(c.docs[id], f) {
			matched = append(matched, c.docs[id])
		}
	}
	c.mu.Unlock()

	if o.Order != "" {
		asc := o.Direction >= 0
		sort.SliceStable(matched, func(i, j int) bool {
			vi, _ := fieldValue(matched[i], o.Order)
			vj, _ := fieldValue(matched[j], o.Order)
			if asc {
				return lessThan(vi, vj)
			}
			return lessThan(vj, vi)
		})
	}

	if o.Skip > 0 {
		if o.Skip >= int64(len(matched)) {
			return []T{}, nil
		}
		matched = matched[o.Skip:]
	}
	if o.Limit > 0 && int64(len(matched)) > o.Limit {
		matched = matched[:o.Limit]
	}
	return matched, nil
}

func (c *MemCollection[T]) FindOne(ctx context.Context, f Filter) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range c.order {
		if matches(c.docs[id], f) {
			doc := c.docs[id]
			return &doc, nil
		}
	}
	return nil, nil
}

func (c *MemCollection[T]) InsertMany(ctx context.Context, items []T) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failInsert != nil {
		return 0, c.failInsert
	}
	for _, item := range items {
		if _, exists := c.docs[item.EntityID()]; exists {
			return 0, fmt.Errorf("duplicate key: %s", item.EntityID())
		}
	}
	for _, item := range items {
		c.docs[item.EntityID()] = item
		c.order = append(c.order, item.EntityID())
	}
	return int64(len(items)), nil
}

func (c *MemCollection[T]) UpsertMany(ctx context.Context, items []T) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range items {
		if _, exists := c.docs[item.EntityID()]; !exists {
			c.order = append(c.order, item.EntityID())
		}
		c.docs[item.EntityID()] = item
	}
	return int64(len(items)), nil
}

func (c *MemCollection[T]) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int64
	for _, id := range ids {
		if _, exists := c.docs[id]; !exists {
			continue
		}
		delete(c.docs, id)
		for i, oid := range c.order {
			if oid == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
		n++
	}
	return n, nil
}

// MemSeatStore adds the conditional seat updates over the projections
// collection. The guard and the mutation share the collection lock, which
// gives the same atomicity the Mongo gateway gets from conditional
// UpdateOne calls.
type MemSeatStore struct {
	*MemCollection[models.MovieProjection]
}

func (s *MemSeatStore) DecrementSeats(ctx context.Context, id uuid.UUID, qty int32) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if qty <= 0 {
		return false, fmt.Errorf("quantity must be positive, got %d", qty)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.docs[id]
	if !ok || p.AvailableSeats < qty {
		return false, nil
	}
	p.AvailableSeats -= qty
	s.docs[id] = p
	return true, nil
}

func (s *MemSeatStore) IncrementSeats(ctx context.Context, id uuid.UUID, qty int32) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if qty <= 0 {
		return false, fmt.Errorf("quantity must be positive, got %d", qty)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.docs[id]
	if !ok || p.AvailableSeats+qty > p.TotalSeats {
		return false, nil
	}
	p.AvailableSeats += qty
	s.docs[id] = p
	return true, nil
}

// matches evaluates the equality filter against a document using its bson
// field names, mirroring how the store gateway targets fields.
func matches(item interface{}, f Filter) bool {
	if f.IsEmpty() {
		return true
	}
	v, ok := fieldValue(item, f.Key)
	if !ok {
		return false
	}
	return valuesEqual(v, f.Value)
}

func fieldValue(item interface{}, key string) (interface{}, bool) {
	rv := reflect.ValueOf(item)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		tag := strings.Split(rt.Field(i).Tag.Get("bson"), ",")[0]
		if tag == key {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

func valuesEqual(a, b interface{}) bool {
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		return ok && at.Equal(bt)
	}
	if an, ok := asNumber(a); ok {
		bn, bok := asNumber(b)
		return bok && an == bn
	}
	return reflect.DeepEqual(a, b)
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func lessThan(a, b interface{}) bool {
	if an, ok := asNumber(a); ok {
		if bn, ok := asNumber(b); ok {
			return an < bn
		}
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Before(bt)
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as < bs
		}
	}
	if au, ok := a.(uuid.UUID); ok {
		if bu, ok := b.(uuid.UUID); ok {
			return au.String() < bu.String()
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
