package dal

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinetick/internal/models"
	"cinetick/internal/shared/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjection(total, available int32) models.MovieProjection {
	return models.MovieProjection{
		ID:             uuid.New(),
		MovieID:        uuid.New(),
		StartTime:      time.Now().Add(24 * time.Hour),
		TotalSeats:     total,
		AvailableSeats: available,
	}
}

func TestUnitOfWorkCommitFlushesAllRepositories(t *testing.T) {
	ctx := context.Background()
	stores := NewMemStores()
	uow := NewUnitOfWork(stores)

	movie := models.Movie{ID: uuid.New(), Title: "Metropolis", Genre: "sci-fi"}
	projection := newProjection(100, 100)
	rating := models.Rating{ID: uuid.New(), MovieID: movie.ID, Value: 4.5, UserID: uuid.New()}

	uow.Movies.Add(movie)
	uow.Projections.Add(projection)
	uow.Ratings.Add(rating)
	assert.Equal(t, 3, uow.PendingChanges())

	n, err := uow.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Zero(t, uow.PendingChanges())

	got, err := uow.Movies.GetByID(ctx, movie.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Metropolis", got.Title)
}

func TestUnitOfWorkSecondCommitIsEmpty(t *testing.T) {
	ctx := context.Background()
	uow := NewUnitOfWork(NewMemStores())

	uow.Tickets.Add(models.Ticket{ID: uuid.New(), Name: "solo"})
	n, err := uow.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = uow.Commit(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "a commit with no staged operations affects nothing")
}

func TestUnitOfWorkPhaseOrderWithinRepository(t *testing.T) {
	ctx := context.Background()
	stores := NewMemStores()

	// Stage an add, an update of the same document and its removal in one
	// unit of work: adds flush first, then upserts, then deletes, so the
	// document must be gone afterwards.
	uow := NewUnitOfWork(stores)
	ticket := models.Ticket{ID: uuid.New(), Name: "fleeting", Price: 1}
	uow.Tickets.Add(ticket)
	ticket.Price = 2
	uow.Tickets.Update(ticket)
	uow.Tickets.Remove(ticket.ID)

	n, err := uow.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	got, err := uow.Tickets.GetByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUnitOfWorkPartialFailureKeepsEarlierFlushes(t *testing.T) {
	ctx := context.Background()
	stores := NewMemStores()

	projection := newProjection(50, 50)
	_, err := stores.Projections().InsertMany(ctx, []models.MovieProjection{projection})
	require.NoError(t, err)

	boom := errors.New("connection reset")
	stores.TicketsMem().FailInserts(boom)

	uow := NewUnitOfWork(stores)
	projection.AvailableSeats = 49
	uow.Projections.Update(projection)
	uow.Tickets.Add(models.Ticket{ID: uuid.New(), Name: "doomed"})

	_, err = uow.Commit(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrStore)

	// projections flush before tickets, so the update stuck
	got, err := stores.Projections().FindOne(ctx, Filter{Key: "_id", Value: projection.ID})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int32(49), got.AvailableSeats)

	// and the ticket insert never happened
	count, err := stores.Tickets().Count(ctx, Filter{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUnitOfWorkCancelledContext(t *testing.T) {
	stores := NewMemStores()
	uow := NewUnitOfWork(stores)
	uow.Tickets.Add(models.Ticket{ID: uuid.New()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uow.Commit(ctx)
	require.Error(t, err)

	// nothing was applied
	count, err := stores.Tickets().Count(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Zero(t, count)
}
