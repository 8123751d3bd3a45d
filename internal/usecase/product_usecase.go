package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	products repo.ProductRepository
}

func NewProductUsecase(products repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

type CreateProductInput struct {
	ProductName        string
	ProductDescription *string
	ProductQuantity    int64
}

type UpdateProductInput struct {
	ProductName        *string
	ProductDescription *string
	ProductQuantity    *int64
}

type ProductOutput struct {
	ProductID          string    `json:"productId"`
	ProductName        string    `json:"productName"`
	ProductDescription *string   `json:"productDescription"`
	ProductQuantity    int64     `json:"productQuantity"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func toProductOutput(p model.Product) ProductOutput {
	return ProductOutput{
		ProductID:          p.ProductID,
		ProductName:        p.ProductName,
		ProductDescription: p.ProductDescription,
		ProductQuantity:    p.ProductQuantity,
		UpdatedAt:          p.UpdatedAt,
	}
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (ProductOutput, error) {
	name := strings.TrimSpace(in.ProductName)
	if name == "" || len(name) > 50 {
		return ProductOutput{}, NewValidationError("invalid productName")
	}
	if in.ProductQuantity < 0 {
		return ProductOutput{}, NewValidationError("productQuantity must be 0 or greater")
	}

	created, err := u.products.Create(ctx, model.Product{
		ProductName:        name,
		ProductDescription: in.ProductDescription,
		ProductQuantity:    in.ProductQuantity,
	})
	if err != nil {
		return ProductOutput{}, err
	}
	return toProductOutput(created), nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID string) (ProductOutput, error) {
	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductOutput{}, NewNotFoundError("Product not found")
	}
	if err != nil {
		return ProductOutput{}, err
	}
	return toProductOutput(p), nil
}

// nameQueryが空なら全件
func (u *ProductUsecase) ListProducts(ctx context.Context, nameQuery string) ([]ProductOutput, error) {
	var (
		items []model.Product
		err   error
	)
	if nameQuery != "" {
		items, err = u.products.SearchByName(ctx, nameQuery)
	} else {
		items, err = u.products.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	outs := make([]ProductOutput, 0, len(items))
	for _, p := range items {
		outs = append(outs, toProductOutput(p))
	}
	return outs, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID string, in UpdateProductInput) (ProductOutput, error) {
	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductOutput{}, NewNotFoundError("Product not found")
	}
	if err != nil {
		return ProductOutput{}, err
	}

	if in.ProductName != nil {
		name := strings.TrimSpace(*in.ProductName)
		if name == "" || len(name) > 50 {
			return ProductOutput{}, NewValidationError("invalid productName")
		}
		p.ProductName = name
	}
	if in.ProductDescription != nil {
		p.ProductDescription = in.ProductDescription
	}
	if in.ProductQuantity != nil {
		if *in.ProductQuantity < 0 {
			return ProductOutput{}, NewValidationError("productQuantity must be 0 or greater")
		}
		p.ProductQuantity = *in.ProductQuantity
	}

	if err := u.products.Update(ctx, p); err != nil {
		return ProductOutput{}, err
	}
	return toProductOutput(p), nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID string) error {
	err := u.products.Delete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewNotFoundError("Product not found")
	}
	return err
}
