package models

import (
	"time"

	"github.com/google/uuid"
)

// MovieProjection is a scheduled screening with a live seat counter.
// Invariant: 0 <= AvailableSeats <= TotalSeats at rest. AvailableSeats is
// mutated only through the conditional seat operations on the store or a
// direct admin update.
type MovieProjection struct {
	ID             uuid.UUID `bson:"_id" json:"id"`
	MovieID        uuid.UUID `bson:"movie_id" json:"movie_id"`
	StartTime      time.Time `bson:"start_time" json:"start_time"`
	TotalSeats     int32     `bson:"total_seats" json:"total_seats"`
	AvailableSeats int32     `bson:"available_seats" json:"available_seats"`
}

func (p MovieProjection) EntityID() uuid.UUID { return p.ID }
