package movies

import (
	"context"

	"cinetick/internal/dal"
	"cinetick/internal/models"
	"cinetick/internal/shared/apperr"
	"cinetick/internal/shared/constants"
	"cinetick/pkg/cache"

	"github.com/google/uuid"
)

// Service is the contract for movie catalog logic.
type Service interface {
	Create(ctx context.Context, req *CreateMovieRequest) (*models.Movie, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Movie, error)
	List(ctx context.Context, index, count int64, order string, direction int) ([]models.Movie, int64, error)
	Search(ctx context.Context, key, value string, index, count int64, order string, direction int) ([]models.Movie, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateMovieRequest) (*models.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	stores dal.Stores
	cache  cache.Service
}

// NewService creates a new movie service instance. cacheSvc may be nil;
// lookups then always hit the store.
func NewService(stores dal.Stores, cacheSvc cache.Service) Service {
	return &service{stores: stores, cache: cacheSvc}
}

func movieCacheKey(id uuid.UUID) string {
	return constants.BuildMovieDetailKey(id.String())
}

func (s *service) Create(ctx context.Context, req *CreateMovieRequest) (*models.Movie, error) {
	uow := dal.NewUnitOfWork(s.stores)
	movie := models.Movie{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		ReleaseDate: req.ReleaseDate,
	}
	uow.Movies.Add(movie)
	if _, err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Movie, error) {
	if s.cache != nil {
		var cached models.Movie
		err := s.cache.GetOrSet(ctx, movieCacheKey(id), constants.TTL_MOVIE_DETAIL, func() (interface{}, error) {
			return s.fetch(ctx, id)
		}, &cached)
		if err != nil {
			return nil, err
		}
		return &cached, nil
	}
	return s.fetch(ctx, id)
}

func (s *service) fetch(ctx context.Context, id uuid.UUID) (*models.Movie, error) {
	uow := dal.NewUnitOfWork(s.stores)
	movie, err := uow.Movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFoundf("movie %s", id)
	}
	return movie, nil
}

func (s *service) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, movieCacheKey(id))
	}
}

func (s *service) List(ctx context.Context, index, count int64, order string, direction int) ([]models.Movie, int64, error) {
	uow := dal.NewUnitOfWork(s.stores)
	items, err := uow.Movies.List(ctx, index, count, order, direction)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.Movies.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *service) Search(ctx context.Context, key, value string, index, count int64, order string, direction int) ([]models.Movie, int64, error) {
	uow := dal.NewUnitOfWork(s.stores)
	items, err := uow.Movies.ListBy(ctx, key, value, index, count, order, direction)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.Movies.CountBy(ctx, key, value)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req *UpdateMovieRequest) (*models.Movie, error) {
	uow := dal.NewUnitOfWork(s.stores)
	movie, err := uow.Movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFoundf("movie %s", id)
	}

	movie.Title = req.Title
	movie.Description = req.Description
	movie.Genre = req.Genre
	movie.ReleaseDate = req.ReleaseDate
	uow.Movies.Update(*movie)

	if _, err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return movie, nil
}

// Delete removes the movie and every projection scheduled for it. Tickets
// already sold stay untouched.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	uow := dal.NewUnitOfWork(s.stores)
	movie, err := uow.Movies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if movie == nil {
		return apperr.NotFoundf("movie %s", id)
	}

	if len(movie.MovieProjectionIDs) > 0 {
		if err := uow.Projections.RemoveMany(movie.MovieProjectionIDs); err != nil {
			return err
		}
	}
	uow.Movies.Remove(id)

	if _, err := uow.Commit(ctx); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}
