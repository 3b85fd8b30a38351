package tickets

// reservation request payload
type ReserveRequest struct {
	MovieProjectionID string  `json:"movie_projection_id" validate:"required,uuid4"`
	Quantity          int32   `json:"quantity" validate:"required"`
	Name              string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Price             float64 `json:"price" validate:"gte=0"`
}

// direct ticket creation payload (admin)
type CreateTicketRequest struct {
	Name              string  `json:"name" validate:"required,max=200"`
	Price             float64 `json:"price" validate:"gte=0"`
	MovieProjectionID string  `json:"movie_projection_id" validate:"required,uuid4"`
	UserID            string  `json:"user_id" validate:"required,uuid4"`
}

// ticket update payload (admin)
type UpdateTicketRequest struct {
	Name  string  `json:"name" validate:"required,max=200"`
	Price float64 `json:"price" validate:"gte=0"`
}
