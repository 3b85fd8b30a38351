package auth

import (
	"context"

	"cinetick/internal/dal"
	"cinetick/internal/models"

	"github.com/google/uuid"
)

type Repository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUserPassword(ctx context.Context, userID string, hashedPassword string) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

type repository struct {
	coll dal.Collection[models.User]
}

func NewRepository(coll dal.Collection[models.User]) Repository {
	return &repository{
		coll: coll,
	}
}

func (r *repository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.coll.InsertMany(ctx, []models.User{*user})
	return err
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.coll.FindOne(ctx, dal.Filter{Key: "email", Value: email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *repository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user, err := r.coll.FindOne(ctx, dal.Filter{Key: "_id", Value: uid})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *repository) UpdateUserPassword(ctx context.Context, userID string, hashedPassword string) error {
	user, err := r.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Password = hashedPassword
	_, err = r.coll.UpsertMany(ctx, []models.User{*user})
	return err
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := r.coll.Count(ctx, dal.Filter{Key: "email", Value: email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
