package dal

import (
	"context"

	"cinetick/internal/models"

	"github.com/google/uuid"
)

// ProjectionRepository extends the generic repository with the conditional
// seat-counter operations. Unlike staged writes, these hit the store
// immediately: the availability guard and the decrement must be one atomic
// store operation, or two concurrent reservations could both pass the check
// and oversell the projection.
type ProjectionRepository struct {
	*Repository[models.MovieProjection]
	seats SeatStore
}

// NewProjectionRepository wraps a seat store.
func NewProjectionRepository(seats SeatStore) *ProjectionRepository {
	return &ProjectionRepository{
		Repository: NewRepository[models.MovieProjection](seats),
		seats:      seats,
	}
}

// ReserveSeats atomically takes qty seats from the projection. It returns
// false when fewer than qty seats are available or the projection does not
// exist; the caller distinguishes the two with GetByID.
func (r *ProjectionRepository) ReserveSeats(ctx context.Context, id uuid.UUID, qty int32) (bool, error) {
	return r.seats.DecrementSeats(ctx, id, qty)
}

// ReleaseSeats atomically returns qty seats, capped at the projection's
// total. Used to compensate a reservation whose commit failed.
func (r *ProjectionRepository) ReleaseSeats(ctx context.Context, id uuid.UUID, qty int32) (bool, error) {
	return r.seats.IncrementSeats(ctx, id, qty)
}
