package models

import "github.com/google/uuid"

// Ticket represents one reserved seat for one projection. Tickets are
// historical records: deleting a ticket does not return its seat to the
// projection's available pool.
type Ticket struct {
	ID                uuid.UUID `bson:"_id" json:"id"`
	Name              string    `bson:"name" json:"name"`
	Price             float64   `bson:"price" json:"price"`
	MovieProjectionID uuid.UUID `bson:"movie_projection_id" json:"movie_projection_id"`
	UserID            uuid.UUID `bson:"user_id" json:"user_id"`
}

func (t Ticket) EntityID() uuid.UUID { return t.ID }
