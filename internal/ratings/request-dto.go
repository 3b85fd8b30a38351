package ratings

// rating creation payload. The author is taken from the access token.
type CreateRatingRequest struct {
	MovieID string  `json:"movie_id" validate:"required,uuid4"`
	Value   float64 `json:"value" validate:"gte=0,lte=10"`
}

// rating update payload
type UpdateRatingRequest struct {
	Value float64 `json:"value" validate:"gte=0,lte=10"`
}
