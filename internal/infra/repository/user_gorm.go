package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) FindByID(ctx context.Context, userID string) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&u).Error
	if isNotFound(err) {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("user_email = ?", email).First(&u).Error
	if isNotFound(err) {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *UserGormRepository) FindByAccount(ctx context.Context, account string) (model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("user_account = ?", account).First(&u).Error
	if isNotFound(err) {
		return model.User{}, repo.ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *UserGormRepository) ExistsByID(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) ListAll(ctx context.Context) ([]model.User, error) {
	var items []model.User
	if err := r.db.WithContext(ctx).Order("user_name asc").Find(&items).Error; err != nil {
		return []model.User{}, err
	}
	return items, nil
}

func (r *UserGormRepository) Search(ctx context.Context, q repo.UserSearch) ([]model.User, error) {
	db := r.db.WithContext(ctx).Model(&model.User{})
	if q.Name != "" {
		db = db.Where("user_name ILIKE ?", "%"+q.Name+"%")
	}
	if q.Email != "" {
		db = db.Where("user_email ILIKE ?", "%"+q.Email+"%")
	}
	if q.Account != "" {
		db = db.Where("user_account ILIKE ?", "%"+q.Account+"%")
	}
	if q.Phone != "" {
		db = db.Where("user_phone LIKE ?", "%"+q.Phone+"%")
	}

	var items []model.User
	if err := db.Order("user_name asc").Find(&items).Error; err != nil {
		return []model.User{}, err
	}
	return items, nil
}

func (r *UserGormRepository) Create(ctx context.Context, u model.User) (model.User, error) {
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		return model.User{}, translateError(err)
	}
	return u, nil
}

func (r *UserGormRepository) Update(ctx context.Context, u model.User) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", u.UserID).
		Updates(map[string]any{
			"user_name":  u.UserName,
			"user_email": u.UserEmail,
			"user_phone": u.UserPhone,
		})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *UserGormRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("user_password", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *UserGormRepository) Delete(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
