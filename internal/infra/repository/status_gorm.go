package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type StatusGormRepository struct {
	db *gorm.DB
}

func NewStatusGormRepository(db *gorm.DB) *StatusGormRepository {
	return &StatusGormRepository{db: db}
}

func (r *StatusGormRepository) FindByID(ctx context.Context, statusID string) (model.Status, error) {
	var s model.Status
	err := r.db.WithContext(ctx).Where("status_id = ?", statusID).First(&s).Error
	if isNotFound(err) {
		return model.Status{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Status{}, err
	}
	return s, nil
}

func (r *StatusGormRepository) FindByCode(ctx context.Context, statusCode string) (model.Status, error) {
	var s model.Status
	err := r.db.WithContext(ctx).Where("status_code = ?", statusCode).First(&s).Error
	if isNotFound(err) {
		return model.Status{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Status{}, err
	}
	return s, nil
}

func (r *StatusGormRepository) ListAll(ctx context.Context) ([]model.Status, error) {
	var items []model.Status
	if err := r.db.WithContext(ctx).Order("status_code asc").Find(&items).Error; err != nil {
		return []model.Status{}, err
	}
	return items, nil
}

func (r *StatusGormRepository) Create(ctx context.Context, s model.Status) (model.Status, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Status{}, translateError(err)
	}
	return s, nil
}

func (r *StatusGormRepository) Update(ctx context.Context, s model.Status) error {
	res := r.db.WithContext(ctx).Model(&model.Status{}).
		Where("status_id = ?", s.StatusID).
		Updates(map[string]any{
			"status_name": s.StatusName,
			"status_code": s.StatusCode,
		})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *StatusGormRepository) Delete(ctx context.Context, statusID string) error {
	res := r.db.WithContext(ctx).Where("status_id = ?", statusID).Delete(&model.Status{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
