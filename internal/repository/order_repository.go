package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("not found")

	// 一意制約違反（email / account / status_code）
	ErrDuplicate = errors.New("duplicate")
)

// 一覧の絞り込み条件。status_codeはusecase側でstatus_idに解決済み。
type OrderListFilter struct {
	UserID     *string
	CustomerID *string
	StatusID   *string

	// order_dateの1日分の窓（DayStart以上、DayEnd未満）
	DayStart *time.Time
	DayEnd   *time.Time
}

// keyset境界。(order_date, order_id)の複合。
type OrderCursor struct {
	Date time.Time
	ID   string

	// trueなら過去ページ方向（昇順で取って呼び出し側で反転する）
	Backward bool
}

type OrderListQuery struct {
	Filter OrderListFilter

	// 取得件数。実装はLimit+1件取って次ページ有無の判定に使わせる。
	Limit int

	// ページ番号モードのoffset。Cursorと排他。
	Offset int

	Cursor *OrderCursor
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	Create(ctx context.Context, order model.Order) (model.Order, error)
	Delete(ctx context.Context, orderID string) error

	UpdateStatus(ctx context.Context, orderID string, statusID string) error
	UpdateTotal(ctx context.Context, orderID string, total decimal.Decimal) error
	UpdateAttachment(ctx context.Context, orderID string, key *string) error

	// Status/Customer/Userを同時ロードして返す。Limit+1件まで。
	List(ctx context.Context, q OrderListQuery) ([]model.Order, error)

	// ページングを無視した同条件の総件数。
	Count(ctx context.Context, f OrderListFilter) (int64, error)
}
