package models

import "github.com/google/uuid"

// Rating is a user's score for a movie. MovieID is a by-value reference;
// a dangling movie id is tolerated, not rejected.
type Rating struct {
	ID      uuid.UUID `bson:"_id" json:"id"`
	MovieID uuid.UUID `bson:"movie_id" json:"movie_id"`
	Value   float64   `bson:"value" json:"value"`
	UserID  uuid.UUID `bson:"user_id" json:"user_id"`
}

func (r Rating) EntityID() uuid.UUID { return r.ID }
