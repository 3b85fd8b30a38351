package ratings

import (
	"context"

	"cinetick/internal/dal"
	"cinetick/internal/models"
	"cinetick/internal/shared/apperr"

	"github.com/google/uuid"
)

// Service is the contract for movie rating logic.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreateRatingRequest) (*models.Rating, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Rating, error)
	List(ctx context.Context, index, count int64, order string, direction int) ([]models.Rating, int64, error)
	Search(ctx context.Context, key, value string, index, count int64, order string, direction int) ([]models.Rating, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRatingRequest) (*models.Rating, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	stores dal.Stores
}

// NewService creates a new rating service instance.
func NewService(stores dal.Stores) Service {
	return &service{stores: stores}
}

// Create records a rating. The movie must exist at write time; the
// reference is by value afterwards and may dangle if the movie is later
// removed.
func (s *service) Create(ctx context.Context, userID uuid.UUID, req *CreateRatingRequest) (*models.Rating, error) {
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, apperr.InvalidArgumentf("invalid movie id %q", req.MovieID)
	}

	uow := dal.NewUnitOfWork(s.stores)

	movie, err := uow.Movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFoundf("movie %s", movieID)
	}

	rating := models.Rating{
		ID:      uuid.New(),
		MovieID: movieID,
		Value:   req.Value,
		UserID:  userID,
	}
	uow.Ratings.Add(rating)

	if _, err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return &rating, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Rating, error) {
	uow := dal.NewUnitOfWork(s.stores)
	rating, err := uow.Ratings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, apperr.NotFoundf("rating %s", id)
	}
	return rating, nil
}

func (s *service) List(ctx context.Context, index, count int64, order string, direction int) ([]models.Rating, int64, error) {
	uow := dal.NewUnitOfWork(s.stores)
	items, err := uow.Ratings.List(ctx, index, count, order, direction)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.Ratings.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *service) Search(ctx context.Context, key, value string, index, count int64, order string, direction int) ([]models.Rating, int64, error) {
	uow := dal.NewUnitOfWork(s.stores)
	items, err := uow.Ratings.ListBy(ctx, key, value, index, count, order, direction)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.Ratings.CountBy(ctx, key, value)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req *UpdateRatingRequest) (*models.Rating, error) {
	uow := dal.NewUnitOfWork(s.stores)
	rating, err := uow.Ratings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, apperr.NotFoundf("rating %s", id)
	}

	rating.Value = req.Value
	uow.Ratings.Update(*rating)

	if _, err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	uow := dal.NewUnitOfWork(s.stores)
	rating, err := uow.Ratings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rating == nil {
		return apperr.NotFoundf("rating %s", id)
	}

	uow.Ratings.Remove(id)
	_, err = uow.Commit(ctx)
	return err
}
