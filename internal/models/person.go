package models

import "github.com/google/uuid"

// Person is a flat directory record. Organizations holds names, not ids.
type Person struct {
	ID            uuid.UUID `bson:"_id" json:"id"`
	FirstName     string    `bson:"first_name" json:"first_name"`
	LastName      string    `bson:"last_name" json:"last_name"`
	Age           int32     `bson:"age" json:"age"`
	Organizations []string  `bson:"organizations" json:"organizations"`
}

func (p Person) EntityID() uuid.UUID { return p.ID }
