package movies

import "time"

// movie creation payload
type CreateMovieRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	Genre       string    `json:"genre" validate:"max=100"`
	ReleaseDate time.Time `json:"release_date,omitempty"`
}

// movie update payload
type UpdateMovieRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description string    `json:"description" validate:"max=2000"`
	Genre       string    `json:"genre" validate:"max=100"`
	ReleaseDate time.Time `json:"release_date,omitempty"`
}
