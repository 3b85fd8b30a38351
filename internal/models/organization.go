package models

import "github.com/google/uuid"

// Organization is a flat directory record.
type Organization struct {
	ID   uuid.UUID `bson:"_id" json:"id"`
	Name string    `bson:"name" json:"name"`
	Code string    `bson:"code" json:"code"`
}

func (o Organization) EntityID() uuid.UUID { return o.ID }
