package tickets

import "cinetick/internal/models"

// represents the result of a reservation
type ReservationResponse struct {
	Tickets        []models.Ticket `json:"tickets"`
	Quantity       int32           `json:"quantity"`
	TotalPrice     float64         `json:"total_price"`
	SeatsRemaining int32           `json:"seats_remaining"`
}
