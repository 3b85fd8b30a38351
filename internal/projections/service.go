package projections

import (
	"context"

	"cinetick/internal/dal"
	"cinetick/internal/models"
	"cinetick/internal/shared/apperr"

	"github.com/google/uuid"
)

// Service is the contract for projection scheduling logic.
type Service interface {
	Create(ctx context.Context, req *CreateProjectionRequest) (*models.MovieProjection, error)
	Get(ctx context.Context, id uuid.UUID) (*models.MovieProjection, error)
	List(ctx context.Context, index, count int64, order string, direction int) ([]models.MovieProjection, int64, error)
	Search(ctx context.Context, key, value string, index, count int64, order string, direction int) ([]models.MovieProjection, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateProjectionRequest) (*models.MovieProjection, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	stores dal.Stores
}

// NewService creates a new projection service instance.
func NewService(stores dal.Stores) Service {
	return &service{stores: stores}
}

// Create schedules a projection and appends its id to the movie's
// projection list in the same commit.
func (s *service) Create(ctx context.Context, req *CreateProjectionRequest) (*models.MovieProjection, error) {
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, apperr.InvalidArgumentf("invalid movie id %q", req.MovieID)
	}

	available := req.TotalSeats
	if req.AvailableSeats != nil {
		available = *req.AvailableSeats
	}
	if available < 0 || available > req.TotalSeats {
		return nil, apperr.InvalidArgumentf("available seats %d outside [0, %d]", available, req.TotalSeats)
	}

	uow := dal.NewUnitOfWork(s.stores)

	movie, err := uow.Movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, apperr.NotFoundf("movie %s", movieID)
	}

	projection := models.MovieProjection{
		ID:             uuid.New(),
		MovieID:        movieID,
		StartTime:      req.StartTime,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: available,
	}
	uow.Projections.Add(projection)

	movie.MovieProjectionIDs = append(movie.MovieProjectionIDs, projection.ID)
	uow.Movies.Update(*movie)

	if _, err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return &projection, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.MovieProjection, error) {
	uow := dal.NewUnitOfWork(s.stores)
	projection, err := uow.Projections.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if projection == nil {
		return nil, apperr.NotFoundf("movie projection %s", id)
	}
	return projection, nil
}

func (s *service) List(ctx context.Context, index, count int64, order string, direction int) ([]models.MovieProjection, int64, error) {
	uow := dal.NewUnitOfWork(s.stores)
	items, err := uow.Projections.List(ctx, index, count, order, direction)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.Projections.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *service) Search(ctx context.Context, key, value string, index, count int64, order string, direction int) ([]models.MovieProjection, int64, error) {
	uow := dal.NewUnitOfWork(s.stores)
	items, err := uow.Projections.ListBy(ctx, key, value, index, count, order, direction)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.Projections.CountBy(ctx, key, value)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update replaces the schedule and seat counters directly. This is the
// administrative override path; reservations never come through here.
func (s *service) Update(ctx context.Context, id uuid.UUID, req *UpdateProjectionRequest) (*models.MovieProjection, error) {
	if req.AvailableSeats > req.TotalSeats {
		return nil, apperr.InvalidArgumentf("available seats %d exceed total %d", req.AvailableSeats, req.TotalSeats)
	}

	uow := dal.NewUnitOfWork(s.stores)
	projection, err := uow.Projections.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if projection == nil {
		return nil, apperr.NotFoundf("movie projection %s", id)
	}

	projection.StartTime = req.StartTime
	projection.TotalSeats = req.TotalSeats
	projection.AvailableSeats = req.AvailableSeats
	uow.Projections.Update(*projection)

	if _, err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return projection, nil
}

// Delete removes the projection and strips its id from the movie's list.
// Sold tickets stay as historical records.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	uow := dal.NewUnitOfWork(s.stores)
	projection, err := uow.Projections.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if projection == nil {
		return apperr.NotFoundf("movie projection %s", id)
	}

	movie, err := uow.Movies.GetByID(ctx, projection.MovieID)
	if err != nil {
		return err
	}
	if movie != nil {
		kept := movie.MovieProjectionIDs[:0]
		for _, pid := range movie.MovieProjectionIDs {
			if pid != id {
				kept = append(kept, pid)
			}
		}
		movie.MovieProjectionIDs = kept
		uow.Movies.Update(*movie)
	}

	uow.Projections.Remove(id)
	_, err = uow.Commit(ctx)
	return err
}
