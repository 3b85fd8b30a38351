package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. Password holds the bcrypt hash and is never
// serialized to JSON.
type User struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Role      string    `bson:"role" json:"role"`
	BirthDate time.Time `bson:"birth_date" json:"birth_date"`
	Address   string    `bson:"address" json:"address"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (u User) EntityID() uuid.UUID { return u.ID }
