package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

type ItemUsecase struct {
	tx     repo.TransactionManager
	items  repo.ItemRepository
	orders repo.OrderRepository
	clock  Clock
}

func NewItemUsecase(
	tx repo.TransactionManager,
	items repo.ItemRepository,
	orders repo.OrderRepository,
	clock Clock,
) *ItemUsecase {
	return &ItemUsecase{tx: tx, items: items, orders: orders, clock: clock}
}

type ItemInput struct {
	ProductID    string
	ItemQuantity int64
}

type ItemOutput struct {
	OrderID      string          `json:"orderId"`
	ProductID    string          `json:"productId"`
	ItemQuantity int64           `json:"itemQuantity"`
	ItemPrice    decimal.Decimal `json:"itemPrice"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func toItemOutput(it model.Item) ItemOutput {
	return ItemOutput{
		OrderID:      it.OrderID,
		ProductID:    it.ProductID,
		ItemQuantity: it.ItemQuantity,
		ItemPrice:    it.ItemPrice,
		UpdatedAt:    it.UpdatedAt,
	}
}

// ReplaceOrderItems は注文の明細一式を丸ごと入れ替える。
// 旧明細の在庫を戻し、新明細の在庫を引き当て、価格を履歴からスナップショットして
// 注文合計を付け直す。途中で失敗したら全部ロールバック。
func (u *ItemUsecase) ReplaceOrderItems(ctx context.Context, orderID string, inputs []ItemInput) ([]ItemOutput, error) {
	//永続化に触る前に入力だけで弾けるものを弾く
	seen := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		if in.ItemQuantity <= 0 {
			return nil, NewValidationError("itemQuantity must be greater than 0")
		}
		if seen[in.ProductID] {
			//1注文1商品1行。重複はまとめず拒否する。
			return nil, NewValidationError("duplicate productId in listItem")
		}
		seen[in.ProductID] = true
	}

	//price_dateはUTC深夜で保存されるので暦日もUTCに固定する
	now := u.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var outs []ItemOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewNotFoundError("Order with given ID does not exist.")
		}
		if err != nil {
			return err
		}

		//確定済みの注文は明細を触れない
		status, err := r.Statuses().FindByID(ctx, order.StatusID)
		if err != nil {
			return err
		}
		if status.StatusCode != model.StatusCodePending {
			return NewWrongStatusError("Order status does not allow item modification.")
		}

		//旧明細の在庫を戻してから消す
		current, err := r.Items().ListByOrderID(ctx, orderID)
		if err != nil {
			return err
		}
		productCache := make(map[string]model.Product)
		for _, it := range current {
			if _, ok := productCache[it.ProductID]; !ok {
				p, err := r.Products().FindByID(ctx, it.ProductID)
				if err != nil {
					return err
				}
				productCache[it.ProductID] = p
			}
			if err := r.Inventory().IncreaseStock(ctx, it.ProductID, it.ItemQuantity); err != nil {
				return err
			}
		}
		if err := r.Items().DeleteByOrderID(ctx, orderID); err != nil {
			return err
		}

		//新明細を入力順に引き当てる
		total := decimal.Zero
		outs = make([]ItemOutput, 0, len(inputs))

		for _, in := range inputs {
			if _, ok := productCache[in.ProductID]; !ok {
				p, err := r.Products().FindByID(ctx, in.ProductID)
				if errors.Is(err, repo.ErrNotFound) {
					return NewNotFoundError("Product with given ID does not exist.")
				}
				if err != nil {
					return err
				}
				productCache[in.ProductID] = p
			}

			//在庫引き当て。足りなければ全体を巻き戻す。
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, in.ProductID, in.ItemQuantity)
			if err != nil {
				return err
			}
			if !ok {
				return NewNotEnoughError("Product with ID: " + in.ProductID + " does not have sufficient quantity.")
			}

			//今日時点で有効な価格をスナップショット
			price, err := r.Prices().FindEffective(ctx, in.ProductID, today)
			if errors.Is(err, repo.ErrNotFound) {
				return NewNotFoundError("Price for given product and date does not exist.")
			}
			if err != nil {
				return err
			}

			created, err := r.Items().Create(ctx, model.Item{
				OrderID:      orderID,
				ProductID:    in.ProductID,
				ItemQuantity: in.ItemQuantity,
				ItemPrice:    price.PriceAmount,
			})
			if err != nil {
				return err
			}

			total = total.Add(price.PriceAmount.Mul(decimal.NewFromInt(in.ItemQuantity)))
			outs = append(outs, toItemOutput(created))
		}

		//合計は導出値として注文側に持たせる
		return r.Orders().UpdateTotal(ctx, orderID, total)
	})

	if err != nil {
		return nil, err
	}
	return outs, nil
}

func (u *ItemUsecase) GetItem(ctx context.Context, orderID string, productID string) (ItemOutput, error) {
	it, err := u.items.FindByOrderAndProduct(ctx, orderID, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ItemOutput{}, NewNotFoundError("Item not found")
	}
	if err != nil {
		return ItemOutput{}, err
	}
	return toItemOutput(it), nil
}

func (u *ItemUsecase) ListItemsByOrder(ctx context.Context, orderID string) ([]ItemOutput, error) {
	if _, err := u.orders.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NewNotFoundError("Order with given ID does not exist.")
		}
		return nil, err
	}

	items, err := u.items.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	outs := make([]ItemOutput, 0, len(items))
	for _, it := range items {
		outs = append(outs, toItemOutput(it))
	}
	return outs, nil
}

func (u *ItemUsecase) ListAllItems(ctx context.Context) ([]ItemOutput, error) {
	items, err := u.items.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	outs := make([]ItemOutput, 0, len(items))
	for _, it := range items {
		outs = append(outs, toItemOutput(it))
	}
	return outs, nil
}
