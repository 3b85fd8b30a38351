package tickets

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cinetick/internal/dal"
	"cinetick/internal/models"
	"cinetick/internal/notifications"
	"cinetick/internal/shared/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingPublisher struct {
	mu     sync.Mutex
	events []*notifications.TicketEvent
}

func (p *capturingPublisher) PublishTicketEvent(ctx context.Context, event *notifications.TicketEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturingPublisher) Close() error { return nil }

func seedProjection(t *testing.T, stores *dal.MemStores, total, available int32) models.MovieProjection {
	t.Helper()
	ctx := context.Background()

	movie := models.Movie{ID: uuid.New(), Title: "Stalker", Genre: "sci-fi"}
	_, err := stores.Movies().InsertMany(ctx, []models.Movie{movie})
	require.NoError(t, err)

	projection := models.MovieProjection{
		ID:             uuid.New(),
		MovieID:        movie.ID,
		StartTime:      time.Now().Add(48 * time.Hour),
		TotalSeats:     total,
		AvailableSeats: available,
	}
	_, err = stores.Projections().InsertMany(ctx, []models.MovieProjection{projection})
	require.NoError(t, err)
	return projection
}

func projectionSeats(t *testing.T, stores *dal.MemStores, id uuid.UUID) int32 {
	t.Helper()
	p, err := stores.Projections().FindOne(context.Background(), dal.Filter{Key: "_id", Value: id})
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.AvailableSeats
}

func TestReserveHappyPath(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	publisher := &capturingPublisher{}
	svc := NewService(stores, publisher, nil)
	projection := seedProjection(t, stores, 100, 10)
	userID := uuid.New()

	resp, err := svc.Reserve(ctx, userID, &ReserveRequest{
		MovieProjectionID: projection.ID.String(),
		Quantity:          3,
		Price:             12.5,
	})
	require.NoError(t, err)
	require.Len(t, resp.Tickets, 3)
	assert.Equal(t, int32(7), resp.SeatsRemaining)
	assert.Equal(t, 37.5, resp.TotalPrice)
	// the request named no ticket, so the movie title is used
	assert.Equal(t, "Stalker", resp.Tickets[0].Name)
	for _, ticket := range resp.Tickets {
		assert.Equal(t, userID, ticket.UserID)
		assert.Equal(t, projection.ID, ticket.MovieProjectionID)
	}

	assert.Equal(t, int32(7), projectionSeats(t, stores, projection.ID))

	count, err := stores.Tickets().Count(ctx, dal.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, notifications.EventTicketReserved, publisher.events[0].Type)
	assert.Equal(t, int32(3), publisher.events[0].Quantity)
}

func TestReserveRejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores, nil, nil)
	projection := seedProjection(t, stores, 10, 10)

	for _, qty := range []int32{0, -1} {
		_, err := svc.Reserve(ctx, uuid.New(), &ReserveRequest{
			MovieProjectionID: projection.ID.String(),
			Quantity:          qty,
		})
		assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	}

	// nothing was touched
	assert.Equal(t, int32(10), projectionSeats(t, stores, projection.ID))
}

func TestReserveUnknownProjection(t *testing.T) {
	ctx := context.Background()
	svc := NewService(dal.NewMemStores(), nil, nil)

	_, err := svc.Reserve(ctx, uuid.New(), &ReserveRequest{
		MovieProjectionID: uuid.NewString(),
		Quantity:          1,
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestReserveCapacityExceeded(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores, nil, nil)
	projection := seedProjection(t, stores, 10, 2)

	_, err := svc.Reserve(ctx, uuid.New(), &ReserveRequest{
		MovieProjectionID: projection.ID.String(),
		Quantity:          3,
	})
	assert.ErrorIs(t, err, apperr.ErrCapacityExceeded)
	assert.Equal(t, int32(2), projectionSeats(t, stores, projection.ID))

	// exact remainder still succeeds
	_, err = svc.Reserve(ctx, uuid.New(), &ReserveRequest{
		MovieProjectionID: projection.ID.String(),
		Quantity:          2,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(0), projectionSeats(t, stores, projection.ID))
}

func TestReserveCompensatesFailedCommit(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores, nil, nil)
	projection := seedProjection(t, stores, 10, 5)

	stores.TicketsMem().FailInserts(errors.New("connection reset"))

	_, err := svc.Reserve(ctx, uuid.New(), &ReserveRequest{
		MovieProjectionID: projection.ID.String(),
		Quantity:          4,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrStore)

	// the decrement was rolled back and no ticket survived
	assert.Equal(t, int32(5), projectionSeats(t, stores, projection.ID))
	count, err := stores.Tickets().Count(ctx, dal.Filter{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestConcurrentReservationsNeverOversell(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores, nil, nil)
	projection := seedProjection(t, stores, 50, 10)

	const workers = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	var succeeded, rejected int

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Reserve(ctx, uuid.New(), &ReserveRequest{
				MovieProjectionID: projection.ID.String(),
				Quantity:          1,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, apperr.ErrCapacityExceeded):
				rejected++
			default:
				t.Errorf("unexpected reservation error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded, "exactly the available seats are sold")
	assert.Equal(t, workers-10, rejected)
	assert.Equal(t, int32(0), projectionSeats(t, stores, projection.ID))

	count, err := stores.Tickets().Count(ctx, dal.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
}

func TestCreateGoesThroughSeatCheck(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores, nil, nil)
	projection := seedProjection(t, stores, 5, 1)

	ticket, err := svc.Create(ctx, &CreateTicketRequest{
		Name:              "Front Row",
		Price:             20,
		MovieProjectionID: projection.ID.String(),
		UserID:            uuid.NewString(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Front Row", ticket.Name)
	assert.Equal(t, int32(0), projectionSeats(t, stores, projection.ID))

	// a sold-out projection refuses even a direct create
	_, err = svc.Create(ctx, &CreateTicketRequest{
		Name:              "Front Row",
		Price:             20,
		MovieProjectionID: projection.ID.String(),
		UserID:            uuid.NewString(),
	})
	assert.ErrorIs(t, err, apperr.ErrCapacityExceeded)
}

func TestDeleteDoesNotRestoreSeats(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores, nil, nil)
	projection := seedProjection(t, stores, 10, 10)

	resp, err := svc.Reserve(ctx, uuid.New(), &ReserveRequest{
		MovieProjectionID: projection.ID.String(),
		Quantity:          1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Tickets, 1)

	require.NoError(t, svc.Delete(ctx, resp.Tickets[0].ID))

	// the ticket is gone but the seat stays taken
	_, err = svc.Get(ctx, resp.Tickets[0].ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, int32(9), projectionSeats(t, stores, projection.ID))

	// deleting twice reports not found
	err = svc.Delete(ctx, resp.Tickets[0].ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListByUser(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores, nil, nil)
	projection := seedProjection(t, stores, 20, 20)
	alice, bob := uuid.New(), uuid.New()

	_, err := svc.Reserve(ctx, alice, &ReserveRequest{MovieProjectionID: projection.ID.String(), Quantity: 2})
	require.NoError(t, err)
	_, err = svc.Reserve(ctx, bob, &ReserveRequest{MovieProjectionID: projection.ID.String(), Quantity: 1})
	require.NoError(t, err)

	mine, err := svc.ListByUser(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := svc.ListByUser(ctx, bob)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}
