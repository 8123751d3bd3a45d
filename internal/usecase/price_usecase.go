package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type PriceUsecase struct {
	prices   repo.PriceRepository
	products repo.ProductRepository
	clock    Clock
}

func NewPriceUsecase(prices repo.PriceRepository, products repo.ProductRepository, clock Clock) *PriceUsecase {
	return &PriceUsecase{prices: prices, products: products, clock: clock}
}

type CreatePriceInput struct {
	ProductID   string
	PriceAmount decimal.Decimal
	PriceDate   time.Time
}

type UpdatePriceInput struct {
	ProductID   *string
	PriceAmount *decimal.Decimal
	PriceDate   *time.Time
}

type PriceOutput struct {
	PriceID     string          `json:"priceId"`
	ProductID   string          `json:"productId"`
	PriceAmount decimal.Decimal `json:"priceAmount"`
	PriceDate   time.Time       `json:"priceDate"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toPriceOutput(p model.Price) PriceOutput {
	return PriceOutput{
		PriceID:     p.PriceID,
		ProductID:   p.ProductID,
		PriceAmount: p.PriceAmount,
		PriceDate:   p.PriceDate,
		UpdatedAt:   p.UpdatedAt,
	}
}

// date-only値はハンドラでUTC深夜として入ってくるので、
// サーバーローカルの暦日をUTCに固定して突き合わせる。
func (u *PriceUsecase) today() time.Time {
	now := u.clock.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (u *PriceUsecase) CreatePrice(ctx context.Context, in CreatePriceInput) (PriceOutput, error) {
	if !in.PriceAmount.IsPositive() {
		return PriceOutput{}, NewValidationError("priceAmount must be greater than 0")
	}
	//過去日の改定は既存明細のスナップショットと矛盾するので受けない
	if in.PriceDate.Before(u.today()) {
		return PriceOutput{}, NewValidationError("priceDate must be today or in the future")
	}
	if _, err := u.products.FindByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return PriceOutput{}, NewNotFoundError("Product with given ID does not exist.")
		}
		return PriceOutput{}, err
	}

	created, err := u.prices.Create(ctx, model.Price{
		ProductID:   in.ProductID,
		PriceAmount: in.PriceAmount,
		PriceDate:   in.PriceDate,
	})
	if err != nil {
		return PriceOutput{}, err
	}
	return toPriceOutput(created), nil
}

func (u *PriceUsecase) GetPrice(ctx context.Context, priceID string) (PriceOutput, error) {
	p, err := u.prices.FindByID(ctx, priceID)
	if errors.Is(err, repo.ErrNotFound) {
		return PriceOutput{}, NewNotFoundError("Price not found")
	}
	if err != nil {
		return PriceOutput{}, err
	}
	return toPriceOutput(p), nil
}

// productIDが空なら全件
func (u *PriceUsecase) ListPrices(ctx context.Context, productID string) ([]PriceOutput, error) {
	var (
		items []model.Price
		err   error
	)
	if productID != "" {
		items, err = u.prices.ListByProductID(ctx, productID)
	} else {
		items, err = u.prices.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	outs := make([]PriceOutput, 0, len(items))
	for _, p := range items {
		outs = append(outs, toPriceOutput(p))
	}
	return outs, nil
}

func (u *PriceUsecase) UpdatePrice(ctx context.Context, priceID string, in UpdatePriceInput) (PriceOutput, error) {
	p, err := u.prices.FindByID(ctx, priceID)
	if errors.Is(err, repo.ErrNotFound) {
		return PriceOutput{}, NewNotFoundError("Price not found")
	}
	if err != nil {
		return PriceOutput{}, err
	}

	if in.ProductID != nil {
		if _, err := u.products.FindByID(ctx, *in.ProductID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return PriceOutput{}, NewNotFoundError("Product with given ID does not exist.")
			}
			return PriceOutput{}, err
		}
		p.ProductID = *in.ProductID
	}
	if in.PriceAmount != nil {
		if !in.PriceAmount.IsPositive() {
			return PriceOutput{}, NewValidationError("priceAmount must be greater than 0")
		}
		p.PriceAmount = *in.PriceAmount
	}
	if in.PriceDate != nil {
		if in.PriceDate.Before(u.today()) {
			return PriceOutput{}, NewValidationError("priceDate must be today or in the future")
		}
		p.PriceDate = *in.PriceDate
	}

	if err := u.prices.Update(ctx, p); err != nil {
		return PriceOutput{}, err
	}
	return toPriceOutput(p), nil
}

func (u *PriceUsecase) DeletePrice(ctx context.Context, priceID string) error {
	err := u.prices.Delete(ctx, priceID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewNotFoundError("Price not found")
	}
	return err
}
