package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Status").Preload("Customer").Preload("User").
		Where("order_id = ?", orderID).
		First(&o).Error
	if isNotFound(err) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return model.Order{}, translateError(err)
	}
	return order, nil
}

func (r *OrderGormRepository) Delete(ctx context.Context, orderID string) error {
	res := r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&model.Order{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, orderID string, statusID string) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Update("status_id", statusID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) UpdateTotal(ctx context.Context, orderID string, total decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Update("order_total", total)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) UpdateAttachment(ctx context.Context, orderID string, key *string) error {
	res := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Update("order_attachment", key)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 絞り込み条件を積む。ListとCountで同じ条件になるよう共通化。
func applyOrderFilter(q *gorm.DB, f repo.OrderListFilter) *gorm.DB {
	if f.UserID != nil {
		q = q.Where("orders.user_id = ?", *f.UserID)
	}
	if f.CustomerID != nil {
		q = q.Where("orders.customer_id = ?", *f.CustomerID)
	}
	if f.StatusID != nil {
		q = q.Where("orders.status_id = ?", *f.StatusID)
	}
	if f.DayStart != nil {
		q = q.Where("orders.order_date >= ?", *f.DayStart)
	}
	if f.DayEnd != nil {
		q = q.Where("orders.order_date < ?", *f.DayEnd)
	}
	return q
}

func (r *OrderGormRepository) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, error) {
	db := r.db.WithContext(ctx).Model(&model.Order{}).
		Preload("Status").Preload("Customer").Preload("User")

	db = applyOrderFilter(db, q.Filter)

	// keyset。order_dateが同時刻でもidで一意に切れる。
	if q.Cursor != nil {
		if q.Cursor.Backward {
			db = db.Where(
				"(orders.order_date > ?) OR (orders.order_date = ? AND orders.order_id > ?)",
				q.Cursor.Date, q.Cursor.Date, q.Cursor.ID,
			).Order("orders.order_date asc").Order("orders.order_id asc")
		} else {
			db = db.Where(
				"(orders.order_date < ?) OR (orders.order_date = ? AND orders.order_id < ?)",
				q.Cursor.Date, q.Cursor.Date, q.Cursor.ID,
			).Order("orders.order_date desc").Order("orders.order_id desc")
		}
	} else {
		db = db.Order("orders.order_date desc").Order("orders.order_id desc")
		if q.Offset > 0 {
			db = db.Offset(q.Offset)
		}
	}

	// 次ページ有無の判定用に1件余分に取る
	var items []model.Order
	if err := db.Limit(q.Limit + 1).Find(&items).Error; err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

func (r *OrderGormRepository) Count(ctx context.Context, f repo.OrderListFilter) (int64, error) {
	var total int64
	q := applyOrderFilter(r.db.WithContext(ctx).Model(&model.Order{}), f)
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
