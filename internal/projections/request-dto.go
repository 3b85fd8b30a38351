package projections

import "time"

// projection creation payload. AvailableSeats defaults to TotalSeats when
// omitted.
type CreateProjectionRequest struct {
	MovieID        string    `json:"movie_id" validate:"required,uuid4"`
	StartTime      time.Time `json:"start_time" validate:"required"`
	TotalSeats     int32     `json:"total_seats" validate:"required,gt=0"`
	AvailableSeats *int32    `json:"available_seats,omitempty"`
}

// projection update payload
type UpdateProjectionRequest struct {
	StartTime      time.Time `json:"start_time" validate:"required"`
	TotalSeats     int32     `json:"total_seats" validate:"required,gt=0"`
	AvailableSeats int32     `json:"available_seats" validate:"gte=0"`
}
