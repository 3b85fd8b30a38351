package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published to the ticket topic
const (
	EventTicketReserved = "ticket.reserved"
	EventTicketDeleted  = "ticket.deleted"
)

// TicketEvent is the message published after a reservation commits. It is
// informational: failures to publish never fail the reservation itself.
type TicketEvent struct {
	EventID           uuid.UUID   `json:"event_id"`
	Type              string      `json:"type"`
	UserID            uuid.UUID   `json:"user_id"`
	MovieProjectionID uuid.UUID   `json:"movie_projection_id"`
	TicketIDs         []uuid.UUID `json:"ticket_ids"`
	Quantity          int32       `json:"quantity"`
	TotalPrice        float64     `json:"total_price"`
	CreatedAt         time.Time   `json:"created_at"`
}

// NewTicketReservedEvent builds the event for a successful reservation.
func NewTicketReservedEvent(userID, projectionID uuid.UUID, ticketIDs []uuid.UUID, totalPrice float64) *TicketEvent {
	return &TicketEvent{
		EventID:           uuid.New(),
		Type:              EventTicketReserved,
		UserID:            userID,
		MovieProjectionID: projectionID,
		TicketIDs:         ticketIDs,
		Quantity:          int32(len(ticketIDs)),
		TotalPrice:        totalPrice,
		CreatedAt:         time.Now(),
	}
}

// ToJSON serializes the event for the wire.
func (e *TicketEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// GetPartitionKey routes events for one projection to one partition so
// consumers see them in order.
func (e *TicketEvent) GetPartitionKey() string {
	return e.MovieProjectionID.String()
}
