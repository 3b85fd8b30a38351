package projections

import (
	"context"
	"testing"
	"time"

	"cinetick/internal/dal"
	"cinetick/internal/models"
	"cinetick/internal/shared/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMovie(t *testing.T, stores *dal.MemStores) models.Movie {
	t.Helper()
	movie := models.Movie{ID: uuid.New(), Title: "Solaris", Genre: "sci-fi"}
	_, err := stores.Movies().InsertMany(context.Background(), []models.Movie{movie})
	require.NoError(t, err)
	return movie
}

func TestCreateLinksProjectionToMovie(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores)
	movie := seedMovie(t, stores)

	projection, err := svc.Create(ctx, &CreateProjectionRequest{
		MovieID:    movie.ID.String(),
		StartTime:  time.Now().Add(72 * time.Hour),
		TotalSeats: 120,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(120), projection.AvailableSeats, "available defaults to total")

	got, err := stores.Movies().FindOne(ctx, dal.Filter{Key: "_id", Value: movie.ID})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []uuid.UUID{projection.ID}, got.MovieProjectionIDs)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores)
	movie := seedMovie(t, stores)

	_, err := svc.Create(ctx, &CreateProjectionRequest{
		MovieID:    "not-a-uuid",
		StartTime:  time.Now(),
		TotalSeats: 10,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	over := int32(11)
	_, err = svc.Create(ctx, &CreateProjectionRequest{
		MovieID:        movie.ID.String(),
		StartTime:      time.Now(),
		TotalSeats:     10,
		AvailableSeats: &over,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Create(ctx, &CreateProjectionRequest{
		MovieID:    uuid.NewString(),
		StartTime:  time.Now(),
		TotalSeats: 10,
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateRejectsAvailableOverTotal(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores)
	movie := seedMovie(t, stores)

	projection, err := svc.Create(ctx, &CreateProjectionRequest{
		MovieID:    movie.ID.String(),
		StartTime:  time.Now().Add(time.Hour),
		TotalSeats: 50,
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, projection.ID, &UpdateProjectionRequest{
		StartTime:      projection.StartTime,
		TotalSeats:     50,
		AvailableSeats: 51,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	updated, err := svc.Update(ctx, projection.ID, &UpdateProjectionRequest{
		StartTime:      projection.StartTime,
		TotalSeats:     60,
		AvailableSeats: 55,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(55), updated.AvailableSeats)
}

func TestDeleteStripsMovieReference(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores)
	movie := seedMovie(t, stores)

	first, err := svc.Create(ctx, &CreateProjectionRequest{
		MovieID:    movie.ID.String(),
		StartTime:  time.Now().Add(time.Hour),
		TotalSeats: 10,
	})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &CreateProjectionRequest{
		MovieID:    movie.ID.String(),
		StartTime:  time.Now().Add(2 * time.Hour),
		TotalSeats: 10,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, first.ID))

	_, err = svc.Get(ctx, first.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	got, err := stores.Movies().FindOne(ctx, dal.Filter{Key: "_id", Value: movie.ID})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []uuid.UUID{second.ID}, got.MovieProjectionIDs)
}
