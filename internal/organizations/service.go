package organizations

import (
	"context"

	"cinetick/internal/dal"
	"cinetick/internal/models"
	"cinetick/internal/shared/apperr"

	"github.com/google/uuid"
)

// organization payload, shared by create and update
type OrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Code string `json:"code" validate:"required,min=1,max=50"`
}

// Service is the contract for the organization directory.
type Service interface {
	Create(ctx context.Context, req *OrganizationRequest) (*models.Organization, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	List(ctx context.Context, index, count int64, order string, direction int) ([]models.Organization, int64, error)
	Search(ctx context.Context, key, value string, index, count int64, order string, direction int) ([]models.Organization, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *OrganizationRequest) (*models.Organization, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	stores dal.Stores
}

// NewService creates a new organization service instance.
func NewService(stores dal.Stores) Service {
	return &service{stores: stores}
}

func (s *service) Create(ctx context.Context, req *OrganizationRequest) (*models.Organization, error) {
	uow := dal.NewUnitOfWork(s.stores)

	// the code is the business key
	existing, err := uow.Organizations.ListBy(ctx, "code", req.Code, 0, 1, "", 0)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperr.ErrAlreadyExists
	}

	org := models.Organization{
		ID:   uuid.New(),
		Name: req.Name,
		Code: req.Code,
	}
	uow.Organizations.Add(org)

	if _, err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return &org, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	uow := dal.NewUnitOfWork(s.stores)
	org, err := uow.Organizations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, apperr.NotFoundf("organization %s", id)
	}
	return org, nil
}

func (s *service) List(ctx context.Context, index, count int64, order string, direction int) ([]models.Organization, int64, error) {
	uow := dal.NewUnitOfWork(s.stores)
	items, err := uow.Organizations.List(ctx, index, count, order, direction)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.Organizations.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *service) Search(ctx context.Context, key, value string, index, count int64, order string, direction int) ([]models.Organization, int64, error) {
	uow := dal.NewUnitOfWork(s.stores)
	items, err := uow.Organizations.ListBy(ctx, key, value, index, count, order, direction)
	if err != nil {
		return nil, 0, err
	}
	total, err := uow.Organizations.CountBy(ctx, key, value)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req *OrganizationRequest) (*models.Organization, error) {
	uow := dal.NewUnitOfWork(s.stores)
	org, err := uow.Organizations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, apperr.NotFoundf("organization %s", id)
	}

	org.Name = req.Name
	org.Code = req.Code
	uow.Organizations.Update(*org)

	if _, err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	uow := dal.NewUnitOfWork(s.stores)
	org, err := uow.Organizations.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if org == nil {
		return apperr.NotFoundf("organization %s", id)
	}

	uow.Organizations.Remove(id)
	_, err = uow.Commit(ctx)
	return err
}
