package tickets

import (
	"context"

	"cinetick/internal/dal"
	"cinetick/internal/models"
	"cinetick/internal/notifications"
	"cinetick/internal/shared/apperr"
	"cinetick/pkg/logger"

	"github.com/google/uuid"
)

// Service is the contract for ticket business logic.
type Service interface {
	Reserve(ctx context.Context, userID uuid.UUID, req *ReserveRequest) (*ReservationResponse, error)
	Create(ctx context.Context, req *CreateTicketRequest) (*models.Ticket, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Ticket, error)
	List(ctx context.Context, index, count int64, order string, direction int) ([]models.Ticket, int64, error)
	Search(ctx context.Context, key, value string, index, count int64, order string, direction int) ([]models.Ticket, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Ticket, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateTicketRequest) (*models.Ticket, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	stores    dal.Stores
	publisher notifications.Publisher
	log       *logger.Logger
}

// NewService creates a new ticket service instance.
func NewService(stores dal.Stores, publisher notifications.Publisher, log *logger.Logger) Service {
	if publisher == nil {
		publisher = notifications.NoopPublisher{}
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		stores:    stores,
		publisher: publisher,
		log:       log,
	}
}

// Reserve takes quantity seats from a projection and creates one ticket per
// seat in a single batched commit. The seat counter is decremented through
// a conditional store update before any ticket is written, so two
// concurrent reservations can never share the last seat. If the ticket
// commit fails afterwards the seats are released again.
func (s *service) Reserve(ctx context.Context, userID uuid.UUID, req *ReserveRequest) (*ReservationResponse, error) {
	if req.Quantity <= 0 {
		return nil, apperr.InvalidArgumentf("reservation quantity must be positive, got %d", req.Quantity)
	}

	projectionID, err := uuid.Parse(req.MovieProjectionID)
	if err != nil {
		return nil, apperr.InvalidArgumentf("invalid movie projection id %q", req.MovieProjectionID)
	}

	uow := dal.NewUnitOfWork(s.stores)

	projection, err := uow.Projections.GetByID(ctx, projectionID)
	if err != nil {
		return nil, err
	}
	if projection == nil {
		return nil, apperr.NotFoundf("movie projection %s", projectionID)
	}

	reserved, err := uow.Projections.ReserveSeats(ctx, projectionID, req.Quantity)
	if err != nil {
		return nil, apperr.Storef("reserve seats", err)
	}
	if !reserved {
		s.log.LogReservationRejected(ctx, projectionID.String(), userID.String(), int(req.Quantity))
		return nil, apperr.ErrCapacityExceeded
	}

	name := req.Name
	if name == "" {
		name = s.ticketName(ctx, uow, projection)
	}

	ticketList := make([]models.Ticket, 0, req.Quantity)
	for i := int32(0); i < req.Quantity; i++ {
		ticketList = append(ticketList, models.Ticket{
			ID:                uuid.New(),
			Name:              name,
			Price:             req.Price,
			MovieProjectionID: projectionID,
			UserID:            userID,
		})
	}
	if err := uow.Tickets.AddMany(ticketList); err != nil {
		s.releaseSeats(ctx, projectionID, req.Quantity)
		return nil, err
	}

	if _, err := uow.Commit(ctx); err != nil {
		s.releaseSeats(ctx, projectionID, req.Quantity)
		return nil, err
	}

	s.log.LogReservationCreated(ctx, projectionID.String(), userID.String(), int(req.Quantity))
	s.publishReserved(ctx, userID, projectionID, ticketList)

	return &ReservationResponse{
		Tickets:        ticketList,
		Quantity:       req.Quantity,
		TotalPrice:     req.Price * float64(req.Quantity),
		SeatsRemaining: projection.AvailableSeats - req.Quantity,
	}, nil
}

// Create writes a single ticket directly. It goes through the same checked
// seat decrement as a reservation, so a direct create cannot oversell the
// projection either.
func (s *service) Create(ctx context.Context, req *CreateTicketRequest) (*models.Ticket, error) {
	projectionID, err := uuid.Parse(req.MovieProjectionID)
	if err != nil {
		return nil, apperr.InvalidArgumentf("invalid movie projection id %q", req.MovieProjectionID)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, apperr.InvalidArgumentf("invalid user id %q", req.UserID)
	}

	uow := dal.NewUnitOfWork(s.stores)

	projection, err := uow.Projections.GetByID(ctx, projectionID)
	if err != nil {
		return nil, err
	}
	if projection == nil {
		return nil, apperr.NotFoundf("movie projection %s", projectionID)
	}

	reserved, err := uow.Projections.ReserveSeats(ctx, projectionID, 1)
	if err != nil {
		return nil, apperr.Storef("reserve seat", err)
	}
	if !reserved {
		return nil, apperr.ErrCapacityExceeded
	}

	ticket := models.Ticket{
		ID:                uuid.New(),
		Name:              req.Name,
		Price:             req.Price,
		MovieProjectionID: projectionID,
		UserID:            userID,
	}
	uow.Tickets.Add(ticket)

	if _, err := uow.Commit(ctx); err != nil {
		s.releaseSeats(ctx, projectionID, 1)
		return nil, err
	}

	return &ticket, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Ticket, error) {
	uow := dal.NewUnitOfWork(s.stores)
	ticket, err := uow.Tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperr.NotFoundf("ticket %s", id)
	}
	return ticket, nil
}

func (s *service) List(ctx context.Context, index, count int64, order string, direction int) ([]models.Ticket, int64, error) {
	uow := dal.NewUnitOfWork(s.stores)
	items, err := uow.Tickets.List(ctx, index, count, order, direction)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.Tickets.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *service) Search(ctx context.Context, key, value string, index, count int64, order string, direction int) ([]models.Ticket, int64, error) {
	uow := dal.NewUnitOfWork(s.stores)
	items, err := uow.Tickets.ListBy(ctx, key, value, index, count, order, direction)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.Tickets.CountBy(ctx, key, value)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Ticket, error) {
	uow := dal.NewUnitOfWork(s.stores)
	return uow.Tickets.ListBy(ctx, "user_id", userID.String(), 0, 0, "", 0)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req *UpdateTicketRequest) (*models.Ticket, error) {
	uow := dal.NewUnitOfWork(s.stores)
	ticket, err := uow.Tickets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperr.NotFoundf("ticket %s", id)
	}

	ticket.Name = req.Name
	ticket.Price = req.Price
	uow.Tickets.Update(*ticket)

	if _, err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Delete removes a ticket without returning its seat to the projection.
// Tickets are sold inventory; freeing the seat again is a separate admin
// action on the projection itself.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	uow := dal.NewUnitOfWork(s.stores)
	ticket, err := uow.Tickets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ticket == nil {
		return apperr.NotFoundf("ticket %s", id)
	}

	uow.Tickets.Remove(id)
	if _, err := uow.Commit(ctx); err != nil {
		return err
	}

	s.log.LogTicketDeleted(ctx, id.String(), ticket.UserID.String())
	return nil
}

// ticketName falls back to the movie title when the request names nothing.
func (s *service) ticketName(ctx context.Context, uow *dal.UnitOfWork, projection *models.MovieProjection) string {
	movie, err := uow.Movies.GetByID(ctx, projection.MovieID)
	if err != nil || movie == nil {
		return "Ticket"
	}
	return movie.Title
}

// releaseSeats compensates a failed reservation commit. Best effort: a
// failure here leaves the counter low, never oversold.
func (s *service) releaseSeats(ctx context.Context, projectionID uuid.UUID, qty int32) {
	if _, err := s.stores.Projections().IncrementSeats(ctx, projectionID, qty); err != nil {
		s.log.ErrorWithContext(ctx, "failed to release reserved seats", err, map[string]interface{}{
			"projection_id": projectionID.String(),
			"quantity":      qty,
		})
	}
}

func (s *service) publishReserved(ctx context.Context, userID, projectionID uuid.UUID, ticketList []models.Ticket) {
	ids := make([]uuid.UUID, len(ticketList))
	var total float64
	for i, t := range ticketList {
		ids[i] = t.ID
		total += t.Price
	}
	event := notifications.NewTicketReservedEvent(userID, projectionID, ids, total)
	if err := s.publisher.PublishTicketEvent(ctx, event); err != nil {
		s.log.ErrorWithContext(ctx, "failed to publish ticket event", err, map[string]interface{}{
			"projection_id": projectionID.String(),
		})
	}
}
