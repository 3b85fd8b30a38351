package models

import (
	"time"

	"github.com/google/uuid"
)

// Movie is a catalog entry. Projections reference it by id; the reverse
// list of projection ids is maintained by the projections feature.
type Movie struct {
	ID                 uuid.UUID   `bson:"_id" json:"id"`
	Title              string      `bson:"title" json:"title"`
	Description        string      `bson:"description" json:"description"`
	Genre              string      `bson:"genre" json:"genre"`
	ReleaseDate        time.Time   `bson:"release_date" json:"release_date"`
	MovieProjectionIDs []uuid.UUID `bson:"movie_projection_ids" json:"movie_projection_ids"`
}

func (m Movie) EntityID() uuid.UUID { return m.ID }
