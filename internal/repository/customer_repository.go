package repository

import (
	"context"

	"app/internal/domain/model"
)

// 検索条件。空文字は条件なし。
type CustomerSearch struct {
	Name  string
	Email string
	Phone string
}

type CustomerRepository interface {
	FindByID(ctx context.Context, customerID string) (model.Customer, error)
	FindByEmail(ctx context.Context, email string) (model.Customer, error)
	ExistsByID(ctx context.Context, customerID string) (bool, error)
	ListAll(ctx context.Context) ([]model.Customer, error)
	Search(ctx context.Context, q CustomerSearch) ([]model.Customer, error)
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error
	Delete(ctx context.Context, customerID string) error
}
