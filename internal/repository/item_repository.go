package repository

import (
	"context"

	"app/internal/domain/model"
)

type ItemRepository interface {
	FindByOrderAndProduct(ctx context.Context, orderID string, productID string) (model.Item, error)
	ListByOrderID(ctx context.Context, orderID string) ([]model.Item, error)
	ListAll(ctx context.Context) ([]model.Item, error)
	Create(ctx context.Context, item model.Item) (model.Item, error)
	DeleteByOrderID(ctx context.Context, orderID string) error
}
