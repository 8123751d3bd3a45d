package repository

import (
	"context"

	"app/internal/domain/model"
)

type UserSearch struct {
	Name    string
	Email   string
	Account string
	Phone   string
}

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByAccount(ctx context.Context, account string) (model.User, error)
	ExistsByID(ctx context.Context, userID string) (bool, error)
	ListAll(ctx context.Context) ([]model.User, error)
	Search(ctx context.Context, q UserSearch) ([]model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, u model.User) error
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
	Delete(ctx context.Context, userID string) error
}
