package dal

import (
	"context"
	"testing"
	"time"

	"cinetick/internal/models"
	"cinetick/internal/shared/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTickets(t *testing.T, coll *MemCollection[models.Ticket], n int, userID uuid.UUID) []models.Ticket {
	t.Helper()
	tickets := make([]models.Ticket, 0, n)
	for i := 0; i < n; i++ {
		tickets = append(tickets, models.Ticket{
			ID:                uuid.New(),
			Name:              "Evening Show",
			Price:             float64(10 + i),
			MovieProjectionID: uuid.New(),
			UserID:            userID,
		})
	}
	_, err := coll.InsertMany(context.Background(), tickets)
	require.NoError(t, err)
	return tickets
}

func TestRepositoryWritesAreStaged(t *testing.T) {
	ctx := context.Background()
	coll := NewMemCollection[models.Ticket]()
	repo := NewRepository[models.Ticket](coll)

	repo.Add(models.Ticket{ID: uuid.New(), Name: "staged"})
	assert.Equal(t, 1, repo.PendingChanges())

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "staged add must not be visible before commit")

	n, err := repo.commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Zero(t, repo.PendingChanges())

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRepositoryNilBatchesRejected(t *testing.T) {
	repo := NewRepository[models.Ticket](NewMemCollection[models.Ticket]())

	assert.ErrorIs(t, repo.AddMany(nil), apperr.ErrInvalidArgument)
	assert.ErrorIs(t, repo.UpdateMany(nil), apperr.ErrInvalidArgument)
	assert.ErrorIs(t, repo.RemoveMany(nil), apperr.ErrInvalidArgument)

	assert.NoError(t, repo.AddMany([]models.Ticket{}))
	assert.Zero(t, repo.PendingChanges())
}

func TestRepositoryListPaging(t *testing.T) {
	ctx := context.Background()
	coll := NewMemCollection[models.Ticket]()
	repo := NewRepository[models.Ticket](coll)
	seedTickets(t, coll, 5, uuid.New())

	page, err := repo.List(ctx, 0, 2, "", 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := repo.List(ctx, 4, 2, "", 0)
	require.NoError(t, err)
	assert.Len(t, rest, 1)

	// negative index and non-positive count fall back to defaults
	all, err := repo.List(ctx, -1, 0, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestRepositoryListOrdering(t *testing.T) {
	ctx := context.Background()
	coll := NewMemCollection[models.Ticket]()
	repo := NewRepository[models.Ticket](coll)
	seedTickets(t, coll, 3, uuid.New())

	asc, err := repo.List(ctx, 0, 10, "price", 0)
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.True(t, asc[0].Price <= asc[1].Price && asc[1].Price <= asc[2].Price)

	desc, err := repo.List(ctx, 0, 10, "price", -1)
	require.NoError(t, err)
	require.Len(t, desc, 3)
	assert.True(t, desc[0].Price >= desc[1].Price && desc[1].Price >= desc[2].Price)
}

func TestRepositoryFilterKeyNormalization(t *testing.T) {
	ctx := context.Background()
	coll := NewMemCollection[models.Ticket]()
	repo := NewRepository[models.Ticket](coll)
	tickets := seedTickets(t, coll, 3, uuid.New())
	id := tickets[0].ID.String()

	byID, err := repo.CountBy(ctx, "id", id)
	require.NoError(t, err)
	byMetadataID, err := repo.CountBy(ctx, "metadata.id", id)
	require.NoError(t, err)

	assert.Equal(t, int64(1), byID)
	assert.Equal(t, byID, byMetadataID, "both aliases must target the primary key")
}

func TestRepositoryTypedFilterValues(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	coll := NewMemCollection[models.Ticket]()
	repo := NewRepository[models.Ticket](coll)
	seedTickets(t, coll, 2, userID)
	seedTickets(t, coll, 1, uuid.New())

	// uuid-typed value
	n, err := repo.CountBy(ctx, "user_id", userID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// numeric value must be matched as a number, not as a string
	n, err = repo.CountBy(ctx, "price", "10")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestRepositoryListByValidation(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[models.Ticket](NewMemCollection[models.Ticket]())

	_, err := repo.ListBy(ctx, "", "value", 0, 10, "", 0)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = repo.ListBy(ctx, "name", "", 0, 10, "", 0)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = repo.CountBy(ctx, "", "")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestRepositoryGetByIDAbsentReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[models.Ticket](NewMemCollection[models.Ticket]())

	got, err := repo.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepositoryUpdateUpserts(t *testing.T) {
	ctx := context.Background()
	coll := NewMemCollection[models.Ticket]()
	repo := NewRepository[models.Ticket](coll)
	tickets := seedTickets(t, coll, 1, uuid.New())

	changed := tickets[0]
	changed.Price = 99.5
	repo.Update(changed)

	// update of an absent document inserts it
	fresh := models.Ticket{ID: uuid.New(), Name: "upserted", Price: 5}
	repo.Update(fresh)

	n, err := repo.commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := repo.GetByID(ctx, changed.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 99.5, got.Price)

	got, err = repo.GetByID(ctx, fresh.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestRepositoryRemoveByIDSet(t *testing.T) {
	ctx := context.Background()
	coll := NewMemCollection[models.Ticket]()
	repo := NewRepository[models.Ticket](coll)
	tickets := seedTickets(t, coll, 3, uuid.New())

	require.NoError(t, repo.RemoveMany([]uuid.UUID{tickets[0].ID, tickets[2].ID}))
	repo.Remove(uuid.New()) // absent id is not an error, just affects nothing

	n, err := repo.commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMemSeatStoreConditionalUpdates(t *testing.T) {
	ctx := context.Background()
	stores := NewMemStores()
	id := uuid.New()
	_, err := stores.Projections().InsertMany(ctx, []models.MovieProjection{{
		ID:             id,
		MovieID:        uuid.New(),
		StartTime:      time.Now().Add(time.Hour),
		TotalSeats:     10,
		AvailableSeats: 3,
	}})
	require.NoError(t, err)

	ok, err := stores.Projections().DecrementSeats(ctx, id, 4)
	require.NoError(t, err)
	assert.False(t, ok, "decrement beyond availability must be refused")

	ok, err = stores.Projections().DecrementSeats(ctx, id, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	p, err := stores.Projections().FindOne(ctx, Filter{Key: "_id", Value: id})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int32(0), p.AvailableSeats)

	// release past the total is refused
	ok, err = stores.Projections().IncrementSeats(ctx, id, 11)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = stores.Projections().IncrementSeats(ctx, id, 10)
	require.NoError(t, err)
	assert.True(t, ok)
}
