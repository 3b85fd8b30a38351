package ratings

import (
	"context"
	"testing"

	"cinetick/internal/dal"
	"cinetick/internal/models"
	"cinetick/internal/shared/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMovie(t *testing.T, stores dal.Stores) models.Movie {
	t.Helper()
	movie := models.Movie{ID: uuid.New(), Title: "Stalker", Genre: "sci-fi"}
	_, err := stores.Movies().InsertMany(context.Background(), []models.Movie{movie})
	require.NoError(t, err)
	return movie
}

func TestRatingRequiresExistingMovie(t *testing.T) {
	ctx := context.Background()
	svc := NewService(dal.NewMemStores())

	_, err := svc.Create(ctx, uuid.New(), &CreateRatingRequest{
		MovieID: uuid.NewString(),
		Value:   7.5,
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Create(ctx, uuid.New(), &CreateRatingRequest{
		MovieID: "not-a-uuid",
		Value:   7.5,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestRatingLifecycle(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores)
	movie := seedMovie(t, stores)
	userID := uuid.New()

	rating, err := svc.Create(ctx, userID, &CreateRatingRequest{
		MovieID: movie.ID.String(),
		Value:   8.0,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, rating.UserID)

	updated, err := svc.Update(ctx, rating.ID, &UpdateRatingRequest{Value: 9.5})
	require.NoError(t, err)
	assert.Equal(t, 9.5, updated.Value)

	byMovie, total, err := svc.Search(ctx, "movie_id", movie.ID.String(), 0, 10, "", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byMovie, 1)

	require.NoError(t, svc.Delete(ctx, rating.ID))
	_, err = svc.Get(ctx, rating.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
