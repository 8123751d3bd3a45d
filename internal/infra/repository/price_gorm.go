package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type PriceGormRepository struct {
	db *gorm.DB
}

func NewPriceGormRepository(db *gorm.DB) *PriceGormRepository {
	return &PriceGormRepository{db: db}
}

func (r *PriceGormRepository) FindByID(ctx context.Context, priceID string) (model.Price, error) {
	var p model.Price
	err := r.db.WithContext(ctx).Where("price_id = ?", priceID).First(&p).Error
	if isNotFound(err) {
		return model.Price{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Price{}, err
	}
	return p, nil
}

// 指定日時点で有効な価格。過去の価格改定のうち最新を1件。
func (r *PriceGormRepository) FindEffective(ctx context.Context, productID string, onDate time.Time) (model.Price, error) {
	var p model.Price
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND price_date <= ?", productID, onDate).
		Order("price_date desc").
		First(&p).Error
	if isNotFound(err) {
		return model.Price{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Price{}, err
	}
	return p, nil
}

func (r *PriceGormRepository) ListAll(ctx context.Context) ([]model.Price, error) {
	var items []model.Price
	if err := r.db.WithContext(ctx).Order("price_date desc").Find(&items).Error; err != nil {
		return []model.Price{}, err
	}
	return items, nil
}

func (r *PriceGormRepository) ListByProductID(ctx context.Context, productID string) ([]model.Price, error) {
	var items []model.Price
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("price_date desc").
		Find(&items).Error
	if err != nil {
		return []model.Price{}, err
	}
	return items, nil
}

func (r *PriceGormRepository) Create(ctx context.Context, p model.Price) (model.Price, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Price{}, translateError(err)
	}
	return p, nil
}

func (r *PriceGormRepository) Update(ctx context.Context, p model.Price) error {
	res := r.db.WithContext(ctx).Model(&model.Price{}).
		Where("price_id = ?", p.PriceID).
		Updates(map[string]any{
			"product_id":   p.ProductID,
			"price_amount": p.PriceAmount,
			"price_date":   p.PriceDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PriceGormRepository) Delete(ctx context.Context, priceID string) error {
	res := r.db.WithContext(ctx).Where("price_id = ?", priceID).Delete(&model.Price{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
