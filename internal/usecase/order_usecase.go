package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/validator"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// 1ページの件数
const OrderPageSize = 20

type OrderUsecase struct {
	orders    repo.OrderRepository
	customers repo.CustomerRepository
	users     repo.UserRepository
	statuses  repo.StatusRepository
	tx        repo.TransactionManager
	log       *zap.Logger
}

func NewOrderUsecase(
	orders repo.OrderRepository,
	customers repo.CustomerRepository,
	users repo.UserRepository,
	statuses repo.StatusRepository,
	tx repo.TransactionManager,
	log *zap.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		orders:    orders,
		customers: customers,
		users:     users,
		statuses:  statuses,
		tx:        tx,
		log:       log,
	}
}

type CreateOrderInput struct {
	CustomerID string
	UserID     string
}

// 単体取得・作成・更新系のレスポンス
type OrderOutput struct {
	OrderID         string          `json:"orderId"`
	CustomerID      string          `json:"customerId"`
	UserID          string          `json:"userId"`
	StatusID        string          `json:"statusId"`
	OrderTotal      decimal.Decimal `json:"orderTotal"`
	OrderDate       time.Time       `json:"orderDate"`
	OrderAttachment *string         `json:"orderAttachment"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func toOrderOutput(o model.Order) OrderOutput {
	return OrderOutput{
		OrderID:         o.OrderID,
		CustomerID:      o.CustomerID,
		UserID:          o.UserID,
		StatusID:        o.StatusID,
		OrderTotal:      o.OrderTotal,
		OrderDate:       o.OrderDate,
		OrderAttachment: o.OrderAttachment,
		UpdatedAt:       o.UpdatedAt,
	}
}

func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (OrderOutput, error) {
	if _, err := u.customers.FindByID(ctx, in.CustomerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return OrderOutput{}, NewNotFoundError("Customer with given ID does not exist.")
		}
		return OrderOutput{}, err
	}
	if _, err := u.users.FindByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return OrderOutput{}, NewNotFoundError("User with given ID does not exist.")
		}
		return OrderOutput{}, err
	}

	//初期ステータス
	status, err := u.statuses.FindByCode(ctx, model.StatusCodePending)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return OrderOutput{}, NewNotFoundError("Default status not found.")
		}
		return OrderOutput{}, err
	}

	created, err := u.orders.Create(ctx, model.Order{
		CustomerID: in.CustomerID,
		UserID:     in.UserID,
		StatusID:   status.StatusID,
		OrderTotal: decimal.Zero,
	})
	if err != nil {
		return OrderOutput{}, err
	}
	return toOrderOutput(created), nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID string) (OrderOutput, error) {
	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, NewNotFoundError("Order not found")
	}
	if err != nil {
		return OrderOutput{}, err
	}
	return toOrderOutput(o), nil
}

func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, orderID string, statusCode string) (OrderOutput, error) {
	code, err := validator.NormalizeStatusCode(statusCode)
	if err != nil {
		return OrderOutput{}, NewValidationError("statusCode must contain only uppercase letters (A-Z)")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, NewNotFoundError("Order not found")
	}
	if err != nil {
		return OrderOutput{}, err
	}

	status, err := u.statuses.FindByCode(ctx, code)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, NewNotFoundError("Status with given code does not exist.")
	}
	if err != nil {
		return OrderOutput{}, err
	}

	if err := u.orders.UpdateStatus(ctx, orderID, status.StatusID); err != nil {
		return OrderOutput{}, err
	}

	u.log.Info("order_status_changed",
		zap.String("order_id", o.OrderID),
		zap.String("user_id", o.UserID),
		zap.String("old_status", o.Status.StatusCode),
		zap.String("new_status", status.StatusCode),
	)

	o.StatusID = status.StatusID
	o.Status = status
	return toOrderOutput(o), nil
}

// 明細→注文の順で同一トランザクション内で消す（外部キーのぶら下がり防止）
func (u *OrderUsecase) DeleteOrder(ctx context.Context, orderID string) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewNotFoundError("Order not found")
			}
			return err
		}
		if err := r.Items().DeleteByOrderID(ctx, orderID); err != nil {
			return err
		}
		return r.Orders().Delete(ctx, orderID)
	})
}

type OrderAttachmentOutput struct {
	OrderID         string  `json:"orderId"`
	OrderAttachment *string `json:"orderAttachment"`
}

func (u *OrderUsecase) SetOrderAttachment(ctx context.Context, orderID string, key string) (OrderAttachmentOutput, error) {
	if key == "" {
		return OrderAttachmentOutput{}, NewValidationError("attachmentKey is required")
	}
	if _, err := u.orders.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return OrderAttachmentOutput{}, NewNotFoundError("Order not found")
		}
		return OrderAttachmentOutput{}, err
	}
	if err := u.orders.UpdateAttachment(ctx, orderID, &key); err != nil {
		return OrderAttachmentOutput{}, err
	}
	return OrderAttachmentOutput{OrderID: orderID, OrderAttachment: &key}, nil
}

func (u *OrderUsecase) GetOrderAttachment(ctx context.Context, orderID string) (OrderAttachmentOutput, error) {
	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderAttachmentOutput{}, NewNotFoundError("Order not found")
	}
	if err != nil {
		return OrderAttachmentOutput{}, err
	}
	if o.OrderAttachment == nil {
		return OrderAttachmentOutput{}, NewNotFoundError("No attachment found for this order")
	}
	return OrderAttachmentOutput{OrderID: o.OrderID, OrderAttachment: o.OrderAttachment}, nil
}

func (u *OrderUsecase) DeleteOrderAttachment(ctx context.Context, orderID string) error {
	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewNotFoundError("Order not found")
	}
	if err != nil {
		return err
	}
	if o.OrderAttachment == nil {
		return NewNotFoundError("No attachment found for this order")
	}
	return u.orders.UpdateAttachment(ctx, orderID, nil)
}

func (u *OrderUsecase) ListOrders(ctx context.Context, in ListOrdersInput) (ListOrdersOutput, error) {
	pag, err := resolvePagination(in)
	if err != nil {
		return ListOrdersOutput{}, err
	}

	//参照先の存在チェック。一覧を引く前に404で落とす。
	filter := repo.OrderListFilter{
		UserID:     in.UserID,
		CustomerID: in.CustomerID,
	}
	if in.StatusCode != nil {
		status, err := u.statuses.FindByCode(ctx, *in.StatusCode)
		if errors.Is(err, repo.ErrNotFound) {
			return ListOrdersOutput{}, NewNotFoundError("Status with given code does not exist.")
		}
		if err != nil {
			return ListOrdersOutput{}, err
		}
		filter.StatusID = &status.StatusID
	}
	if in.UserID != nil {
		ok, err := u.users.ExistsByID(ctx, *in.UserID)
		if err != nil {
			return ListOrdersOutput{}, err
		}
		if !ok {
			return ListOrdersOutput{}, NewNotFoundError("User with given ID does not exist.")
		}
	}
	if in.CustomerID != nil {
		ok, err := u.customers.ExistsByID(ctx, *in.CustomerID)
		if err != nil {
			return ListOrdersOutput{}, err
		}
		if !ok {
			return ListOrdersOutput{}, NewNotFoundError("Customer with given ID does not exist.")
		}
	}
	if in.OrderDate != nil {
		//その日1日分の窓
		start := time.Date(in.OrderDate.Year(), in.OrderDate.Month(), in.OrderDate.Day(), 0, 0, 0, 0, in.OrderDate.Location())
		end := start.AddDate(0, 0, 1)
		filter.DayStart = &start
		filter.DayEnd = &end
	}

	q := repo.OrderListQuery{Filter: filter, Limit: OrderPageSize}
	switch pag.mode {
	case pageByNumber:
		q.Offset = (pag.page - 1) * OrderPageSize
	case pageByCursor:
		q.Cursor = &repo.OrderCursor{
			Date:     pag.cursorDate,
			ID:       pag.cursorID,
			Backward: pag.backward,
		}
	}

	rows, err := u.orders.List(ctx, q)
	if err != nil {
		return ListOrdersOutput{}, err
	}

	page := buildOrderPage(rows, pag, OrderPageSize)

	total, err := u.orders.Count(ctx, filter)
	if err != nil {
		return ListOrdersOutput{}, err
	}
	page.TotalOrders = total
	page.TotalPages = int((total + OrderPageSize - 1) / OrderPageSize)

	return page, nil
}
