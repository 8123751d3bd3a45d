package repository

import (
	"context"

	"app/internal/domain/model"
)

type ProductRepository interface {
	FindByID(ctx context.Context, productID string) (model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	SearchByName(ctx context.Context, nameQuery string) ([]model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, productID string) error
}

// 在庫の増減だけを約束。productテーブルのproduct_quantityを直接更新する。
type InventoryRepository interface {
	// 在庫が足りるときだけ減らす。足りなければfalse。
	DecreaseStockIfEnough(ctx context.Context, productID string, qty int64) (bool, error)

	// 在庫戻し（明細の入れ替え・削除時）
	IncreaseStock(ctx context.Context, productID string, qty int64) error
}
