package repository

import (
	"context"

	"app/internal/domain/model"
)

type StatusRepository interface {
	FindByID(ctx context.Context, statusID string) (model.Status, error)
	FindByCode(ctx context.Context, statusCode string) (model.Status, error)
	ListAll(ctx context.Context) ([]model.Status, error)
	Create(ctx context.Context, s model.Status) (model.Status, error)
	Update(ctx context.Context, s model.Status) error
	Delete(ctx context.Context, statusID string) error
}
