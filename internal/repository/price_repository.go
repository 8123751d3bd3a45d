package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type PriceRepository interface {
	FindByID(ctx context.Context, priceID string) (model.Price, error)

	// 指定日に適用される価格（price_date <= onDate のうち最新の1件）
	FindEffective(ctx context.Context, productID string, onDate time.Time) (model.Price, error)

	ListAll(ctx context.Context) ([]model.Price, error)
	ListByProductID(ctx context.Context, productID string) ([]model.Price, error)
	Create(ctx context.Context, p model.Price) (model.Price, error)
	Update(ctx context.Context, p model.Price) error
	Delete(ctx context.Context, priceID string) error
}
