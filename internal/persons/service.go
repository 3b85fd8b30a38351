package persons

import (
	"context"

	"cinetick/internal/dal"
	"cinetick/internal/models"
	"cinetick/internal/shared/apperr"

	"github.com/google/uuid"
)

// person payload, shared by create and update. Organizations carries
// names, not ids.
type PersonRequest struct {
	FirstName     string   `json:"first_name" validate:"required,min=1,max=100"`
	LastName      string   `json:"last_name" validate:"required,min=1,max=100"`
	Age           int32    `json:"age" validate:"gte=0,lte=150"`
	Organizations []string `json:"organizations" validate:"dive,min=1,max=200"`
}

// Service is the contract for the person directory.
type Service interface {
	Create(ctx context.Context, req *PersonRequest) (*models.Person, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Person, error)
	List(ctx context.Context, index, count int64, order string, direction int) ([]models.Person, int64, error)
	Search(ctx context.Context, key, value string, index, count int64, order string, direction int) ([]models.Person, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *PersonRequest) (*models.Person, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	stores dal.Stores
}

// NewService creates a new person service instance.
func NewService(stores dal.Stores) Service {
	return &service{stores: stores}
}

func (s *service) Create(ctx context.Context, req *PersonRequest) (*models.Person, error) {
	uow := dal.NewUnitOfWork(s.stores)
	person := models.Person{
		ID:            uuid.New(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Age:           req.Age,
		Organizations: req.Organizations,
	}
	uow.Persons.Add(person)

	if _, err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return &person, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	uow := dal.NewUnitOfWork(s.stores)
	person, err := uow.Persons.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apperr.NotFoundf("person %s", id)
	}
	return person, nil
}

func (s *service) List(ctx context.Context, index, count int64, order string, direction int) ([]models.Person, int64, error) {
	uow := dal.NewUnitOfWork(s.stores)
	items, err := uow.Persons.List(ctx, index, count, order, direction)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.Persons.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *service) Search(ctx context.Context, key, value string, index, count int64, order string, direction int) ([]models.Person, int64, error) {
	uow := dal.NewUnitOfWork(s.stores)
	items, err := uow.Persons.ListBy(ctx, key, value, index, count, order, direction)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.Persons.CountBy(ctx, key, value)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req *PersonRequest) (*models.Person, error) {
	uow := dal.NewUnitOfWork(s.stores)
	person, err := uow.Persons.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apperr.NotFoundf("person %s", id)
	}

	person.FirstName = req.FirstName
	person.LastName = req.LastName
	person.Age = req.Age
	person.Organizations = req.Organizations
	uow.Persons.Update(*person)

	if _, err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return person, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	uow := dal.NewUnitOfWork(s.stores)
	person, err := uow.Persons.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if person == nil {
		return apperr.NotFoundf("person %s", id)
	}

	uow.Persons.Remove(id)
	_, err = uow.Commit(ctx)
	return err
}
