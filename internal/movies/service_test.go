package movies

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

func TestMovieLifecycle(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores, nil)

	movie, err := svc.Create(ctx, &CreateMovieRequest{
		Title:       "Playtime",
		Description: "Tati's Paris of glass",
		Genre:       "comedy",
		ReleaseDate: time.Date(1967, 12, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Playtime", got.Title)

	updated, err := svc.Update(ctx, movie.ID, &UpdateMovieRequest{
		Title: "Playtime (restored)",
		Genre: "comedy",
	})
	require.NoError(t, err)
	assert.Equal(t, "Playtime (restored)", updated.Title)

	require.NoError(t, svc.Delete(ctx, movie.ID))
	_, err = svc.Get(ctx, movie.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMovieDeleteCascadesProjections(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores, nil)

	movie, err := svc.Create(ctx, &CreateMovieRequest{Title: "Brazil", Genre: "sci-fi"})
	require.NoError(t, err)

	projection := models.MovieProjection{
		ID:             uuid.New(),
		MovieID:        movie.ID,
		StartTime:      time.Now().Add(time.Hour),
		TotalSeats:     30,
		AvailableSeats: 30,
	}
	_, err = stores.Projections().InsertMany(ctx, []models.MovieProjection{projection})
	require.NoError(t, err)

	movie.MovieProjectionIDs = []uuid.UUID{projection.ID}
	_, err = stores.Movies().UpsertMany(ctx, []models.Movie{*movie})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, movie.ID))

	gone, err := stores.Projections().FindOne(ctx, dal.Filter{Key: "_id", Value: projection.ID})
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestMovieListAndSearch(t *testing.T) {
	ctx := context.Background()
	stores := dal.NewMemStores()
	svc := NewService(stores, nil)

	for _, title := range []string{"Alien", "Aliens", "Alien 3"} {
		_, err := svc.Create(ctx, &CreateMovieRequest{Title: title, Genre: "sci-fi"})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, &CreateMovieRequest{Title: "Amelie", Genre: "comedy"})
	require.NoError(t, err)

	page, total, err := svc.List(ctx, 0, 2, "title", 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, int64(4), total)

	scifi, total, err := svc.Search(ctx, "genre", "sci-fi", 0, 10, "", 0)
	require.NoError(t, err)
	assert.Len(t, scifi, 3)
	assert.Equal(t, int64(3), total)
}
