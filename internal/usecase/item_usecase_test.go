package usecase

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newItemUsecase(tx *TxManagerMock) (*ItemUsecase, *ItemRepoMock, *OrderRepoMock) {
	items := new(ItemRepoMock)
	orders := new(OrderRepoMock)
	clock := &fixedClock{now: time.Date(2026, 5, 10, 15, 30, 0, 0, time.UTC)}
	return NewItemUsecase(tx, items, orders, clock), items, orders
}

func pendingOrder(orderID string) (model.Order, model.Status) {
	st := model.Status{StatusID: "st-pending", StatusCode: model.StatusCodePending}
	return model.Order{OrderID: orderID, StatusID: st.StatusID}, st
}

func TestReplaceOrderItems_Success(t *testing.T) {
	tx := &TxManagerMock{Repos: newTxReposMock()}
	uc, _, _ := newItemUsecase(tx)

	order, st := pendingOrder("ord-1")
	tx.Repos.OrderRepo.On("FindByID", mock.Anything, "ord-1").Return(order, nil)
	tx.Repos.StatusRepo.On("FindByID", mock.Anything, "st-pending").Return(st, nil)

	// 旧明細1件：prod-old x3 を在庫に戻す
	tx.Repos.ItemRepo.On("ListByOrderID", mock.Anything, "ord-1").Return([]model.Item{
		{OrderID: "ord-1", ProductID: "prod-old", ItemQuantity: 3},
	}, nil)
	tx.Repos.ProductRepo.On("FindByID", mock.Anything, "prod-old").Return(model.Product{ProductID: "prod-old"}, nil)
	tx.Repos.InventoryRepo.On("IncreaseStock", mock.Anything, "prod-old", int64(3)).Return(nil)
	tx.Repos.ItemRepo.On("DeleteByOrderID", mock.Anything, "ord-1").Return(nil)

	// 新明細：prod-1 x2 @9.99
	price := decimal.RequireFromString("9.99")
	today := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	tx.Repos.ProductRepo.On("FindByID", mock.Anything, "prod-1").Return(model.Product{ProductID: "prod-1", ProductQuantity: 10}, nil)
	tx.Repos.InventoryRepo.On("DecreaseStockIfEnough", mock.Anything, "prod-1", int64(2)).Return(true, nil)
	tx.Repos.PriceRepo.On("FindEffective", mock.Anything, "prod-1", today).
		Return(model.Price{PriceID: "pr-1", ProductID: "prod-1", PriceAmount: price}, nil)
	tx.Repos.ItemRepo.On("Create", mock.Anything, mock.MatchedBy(func(it model.Item) bool {
		return it.OrderID == "ord-1" && it.ProductID == "prod-1" &&
			it.ItemQuantity == 2 && it.ItemPrice.Equal(price)
	})).Return(model.Item{OrderID: "ord-1", ProductID: "prod-1", ItemQuantity: 2, ItemPrice: price}, nil)

	// 合計 = 9.99 * 2 = 19.98
	tx.Repos.OrderRepo.On("UpdateTotal", mock.Anything, "ord-1", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("19.98"))
	})).Return(nil)

	outs, err := uc.ReplaceOrderItems(context.Background(), "ord-1", []ItemInput{
		{ProductID: "prod-1", ItemQuantity: 2},
	})

	require.NoError(t, err)
	require.Len(t, outs, 1)
	assert.True(t, outs[0].ItemPrice.Equal(price))
	tx.Repos.InventoryRepo.AssertExpectations(t)
	tx.Repos.OrderRepo.AssertExpectations(t)
}

func TestReplaceOrderItems_EmptyListClearsOrder(t *testing.T) {
	tx := &TxManagerMock{Repos: newTxReposMock()}
	uc, _, _ := newItemUsecase(tx)

	order, st := pendingOrder("ord-1")
	tx.Repos.OrderRepo.On("FindByID", mock.Anything, "ord-1").Return(order, nil)
	tx.Repos.StatusRepo.On("FindByID", mock.Anything, "st-pending").Return(st, nil)
	tx.Repos.ItemRepo.On("ListByOrderID", mock.Anything, "ord-1").Return([]model.Item{
		{OrderID: "ord-1", ProductID: "prod-old", ItemQuantity: 1},
	}, nil)
	tx.Repos.ProductRepo.On("FindByID", mock.Anything, "prod-old").Return(model.Product{ProductID: "prod-old"}, nil)
	tx.Repos.InventoryRepo.On("IncreaseStock", mock.Anything, "prod-old", int64(1)).Return(nil)
	tx.Repos.ItemRepo.On("DeleteByOrderID", mock.Anything, "ord-1").Return(nil)
	tx.Repos.OrderRepo.On("UpdateTotal", mock.Anything, "ord-1", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.IsZero()
	})).Return(nil)

	outs, err := uc.ReplaceOrderItems(context.Background(), "ord-1", nil)

	require.NoError(t, err)
	assert.Empty(t, outs)
	tx.Repos.OrderRepo.AssertExpectations(t)
}

func TestReplaceOrderItems_ZeroQuantity(t *testing.T) {
	tx := &TxManagerMock{Repos: newTxReposMock()}
	uc, _, _ := newItemUsecase(tx)

	_, err := uc.ReplaceOrderItems(context.Background(), "ord-1", []ItemInput{
		{ProductID: "prod-1", ItemQuantity: 0},
	})

	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, de.Kind)
	// 永続化には触れない
	tx.Repos.OrderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestReplaceOrderItems_DuplicateProduct(t *testing.T) {
	tx := &TxManagerMock{Repos: newTxReposMock()}
	uc, _, _ := newItemUsecase(tx)

	_, err := uc.ReplaceOrderItems(context.Background(), "ord-1", []ItemInput{
		{ProductID: "prod-1", ItemQuantity: 1},
		{ProductID: "prod-1", ItemQuantity: 2},
	})

	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, KindValidation, de.Kind)
}

func TestReplaceOrderItems_OrderNotFound(t *testing.T) {
	tx := &TxManagerMock{Repos: newTxReposMock()}
	uc, _, _ := newItemUsecase(tx)

	tx.Repos.OrderRepo.On("FindByID", mock.Anything, "nope").Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.ReplaceOrderItems(context.Background(), "nope", []ItemInput{
		{ProductID: "prod-1", ItemQuantity: 1},
	})

	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, de.Kind)
}

func TestReplaceOrderItems_WrongStatus(t *testing.T) {
	tx := &TxManagerMock{Repos: newTxReposMock()}
	uc, _, _ := newItemUsecase(tx)

	tx.Repos.OrderRepo.On("FindByID", mock.Anything, "ord-1").
		Return(model.Order{OrderID: "ord-1", StatusID: "st-shipped"}, nil)
	tx.Repos.StatusRepo.On("FindByID", mock.Anything, "st-shipped").
		Return(model.Status{StatusID: "st-shipped", StatusCode: "SHIPPED"}, nil)

	_, err := uc.ReplaceOrderItems(context.Background(), "ord-1", []ItemInput{
		{ProductID: "prod-1", ItemQuantity: 1},
	})

	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, KindWrongStatus, de.Kind)
	tx.Repos.ItemRepo.AssertNotCalled(t, "DeleteByOrderID", mock.Anything, mock.Anything)
}

func TestReplaceOrderItems_InsufficientStock(t *testing.T) {
	tx := &TxManagerMock{Repos: newTxReposMock()}
	uc, _, _ := newItemUsecase(tx)

	order, st := pendingOrder("ord-1")
	tx.Repos.OrderRepo.On("FindByID", mock.Anything, "ord-1").Return(order, nil)
	tx.Repos.StatusRepo.On("FindByID", mock.Anything, "st-pending").Return(st, nil)
	tx.Repos.ItemRepo.On("ListByOrderID", mock.Anything, "ord-1").Return([]model.Item{}, nil)
	tx.Repos.ItemRepo.On("DeleteByOrderID", mock.Anything, "ord-1").Return(nil)

	tx.Repos.ProductRepo.On("FindByID", mock.Anything, "prod-1").Return(model.Product{ProductID: "prod-1", ProductQuantity: 1}, nil)
	tx.Repos.InventoryRepo.On("DecreaseStockIfEnough", mock.Anything, "prod-1", int64(5)).Return(false, nil)

	_, err := uc.ReplaceOrderItems(context.Background(), "ord-1", []ItemInput{
		{ProductID: "prod-1", ItemQuantity: 5},
	})

	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotEnough, de.Kind)
	assert.Contains(t, de.Message, "prod-1")
	// 失敗したら合計は更新されない（txごとロールバック）
	tx.Repos.OrderRepo.AssertNotCalled(t, "UpdateTotal", mock.Anything, mock.Anything, mock.Anything)
}

func TestReplaceOrderItems_NoEffectivePrice(t *testing.T) {
	tx := &TxManagerMock{Repos: newTxReposMock()}
	uc, _, _ := newItemUsecase(tx)

	order, st := pendingOrder("ord-1")
	today := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	tx.Repos.OrderRepo.On("FindByID", mock.Anything, "ord-1").Return(order, nil)
	tx.Repos.StatusRepo.On("FindByID", mock.Anything, "st-pending").Return(st, nil)
	tx.Repos.ItemRepo.On("ListByOrderID", mock.Anything, "ord-1").Return([]model.Item{}, nil)
	tx.Repos.ItemRepo.On("DeleteByOrderID", mock.Anything, "ord-1").Return(nil)
	tx.Repos.ProductRepo.On("FindByID", mock.Anything, "prod-1").Return(model.Product{ProductID: "prod-1"}, nil)
	tx.Repos.InventoryRepo.On("DecreaseStockIfEnough", mock.Anything, "prod-1", int64(1)).Return(true, nil)
	tx.Repos.PriceRepo.On("FindEffective", mock.Anything, "prod-1", today).Return(model.Price{}, repo.ErrNotFound)

	_, err := uc.ReplaceOrderItems(context.Background(), "ord-1", []ItemInput{
		{ProductID: "prod-1", ItemQuantity: 1},
	})

	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, de.Kind)
}

func TestReplaceOrderItems_MultipleItemsTotal(t *testing.T) {
	tx := &TxManagerMock{Repos: newTxReposMock()}
	uc, _, _ := newItemUsecase(tx)

	order, st := pendingOrder("ord-1")
	today := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	tx.Repos.OrderRepo.On("FindByID", mock.Anything, "ord-1").Return(order, nil)
	tx.Repos.StatusRepo.On("FindByID", mock.Anything, "st-pending").Return(st, nil)
	tx.Repos.ItemRepo.On("ListByOrderID", mock.Anything, "ord-1").Return([]model.Item{}, nil)
	tx.Repos.ItemRepo.On("DeleteByOrderID", mock.Anything, "ord-1").Return(nil)

	p1 := decimal.RequireFromString("10.50")
	p2 := decimal.RequireFromString("3.25")
	for _, tc := range []struct {
		id    string
		qty   int64
		price decimal.Decimal
	}{
		{"prod-1", 2, p1},
		{"prod-2", 4, p2},
	} {
		tc := tc
		tx.Repos.ProductRepo.On("FindByID", mock.Anything, tc.id).Return(model.Product{ProductID: tc.id}, nil)
		tx.Repos.InventoryRepo.On("DecreaseStockIfEnough", mock.Anything, tc.id, tc.qty).Return(true, nil)
		tx.Repos.PriceRepo.On("FindEffective", mock.Anything, tc.id, today).
			Return(model.Price{ProductID: tc.id, PriceAmount: tc.price}, nil)
		tx.Repos.ItemRepo.On("Create", mock.Anything, mock.MatchedBy(func(it model.Item) bool {
			return it.ProductID == tc.id
		})).Return(model.Item{OrderID: "ord-1", ProductID: tc.id, ItemQuantity: tc.qty, ItemPrice: tc.price}, nil)
	}

	// 10.50*2 + 3.25*4 = 34.00
	tx.Repos.OrderRepo.On("UpdateTotal", mock.Anything, "ord-1", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("34.00"))
	})).Return(nil)

	outs, err := uc.ReplaceOrderItems(context.Background(), "ord-1", []ItemInput{
		{ProductID: "prod-1", ItemQuantity: 2},
		{ProductID: "prod-2", ItemQuantity: 4},
	})

	require.NoError(t, err)
	assert.Len(t, outs, 2)
	tx.Repos.OrderRepo.AssertExpectations(t)
}

func TestReplaceOrderItems_EffectiveDateEastOfUTC(t *testing.T) {
	// JST深夜1時でも、その日の価格（UTC深夜で保存）を引ける暦日で照会する
	tx := &TxManagerMock{Repos: newTxReposMock()}
	items := new(ItemRepoMock)
	orders := new(OrderRepoMock)
	clock := &fixedClock{now: time.Date(2026, 5, 10, 1, 0, 0, 0, time.FixedZone("", 9*3600))}
	uc := NewItemUsecase(tx, items, orders, clock)

	order, st := pendingOrder("ord-1")
	tx.Repos.OrderRepo.On("FindByID", mock.Anything, "ord-1").Return(order, nil)
	tx.Repos.StatusRepo.On("FindByID", mock.Anything, "st-pending").Return(st, nil)
	tx.Repos.ItemRepo.On("ListByOrderID", mock.Anything, "ord-1").Return([]model.Item{}, nil)
	tx.Repos.ItemRepo.On("DeleteByOrderID", mock.Anything, "ord-1").Return(nil)

	price := decimal.RequireFromString("5.00")
	today := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	tx.Repos.ProductRepo.On("FindByID", mock.Anything, "prod-1").Return(model.Product{ProductID: "prod-1"}, nil)
	tx.Repos.InventoryRepo.On("DecreaseStockIfEnough", mock.Anything, "prod-1", int64(1)).Return(true, nil)
	tx.Repos.PriceRepo.On("FindEffective", mock.Anything, "prod-1", today).
		Return(model.Price{ProductID: "prod-1", PriceAmount: price}, nil)
	tx.Repos.ItemRepo.On("Create", mock.Anything, mock.Anything).
		Return(model.Item{OrderID: "ord-1", ProductID: "prod-1", ItemQuantity: 1, ItemPrice: price}, nil)
	tx.Repos.OrderRepo.On("UpdateTotal", mock.Anything, "ord-1", mock.Anything).Return(nil)

	_, err := uc.ReplaceOrderItems(context.Background(), "ord-1", []ItemInput{
		{ProductID: "prod-1", ItemQuantity: 1},
	})

	require.NoError(t, err)
	tx.Repos.PriceRepo.AssertExpectations(t)
}

func TestReplaceOrderItems_SameListTwice(t *testing.T) {
	// 同じ明細で二度置き換えても合計は同じで、在庫の出入りは相殺される
	tx := &TxManagerMock{Repos: newTxReposMock()}
	uc, _, _ := newItemUsecase(tx)

	order, st := pendingOrder("ord-1")
	price := decimal.RequireFromString("9.99")
	today := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	created := model.Item{OrderID: "ord-1", ProductID: "prod-1", ItemQuantity: 2, ItemPrice: price}

	tx.Repos.OrderRepo.On("FindByID", mock.Anything, "ord-1").Return(order, nil)
	tx.Repos.StatusRepo.On("FindByID", mock.Anything, "st-pending").Return(st, nil)
	// 1回目は空、2回目は1回目の結果が旧明細として戻ってくる
	tx.Repos.ItemRepo.On("ListByOrderID", mock.Anything, "ord-1").Return([]model.Item{}, nil).Once()
	tx.Repos.ItemRepo.On("ListByOrderID", mock.Anything, "ord-1").Return([]model.Item{created}, nil).Once()
	tx.Repos.ItemRepo.On("DeleteByOrderID", mock.Anything, "ord-1").Return(nil)

	tx.Repos.ProductRepo.On("FindByID", mock.Anything, "prod-1").Return(model.Product{ProductID: "prod-1", ProductQuantity: 10}, nil)
	tx.Repos.InventoryRepo.On("IncreaseStock", mock.Anything, "prod-1", int64(2)).Return(nil)
	tx.Repos.InventoryRepo.On("DecreaseStockIfEnough", mock.Anything, "prod-1", int64(2)).Return(true, nil)
	tx.Repos.PriceRepo.On("FindEffective", mock.Anything, "prod-1", today).
		Return(model.Price{ProductID: "prod-1", PriceAmount: price}, nil)
	tx.Repos.ItemRepo.On("Create", mock.Anything, mock.Anything).Return(created, nil)
	tx.Repos.OrderRepo.On("UpdateTotal", mock.Anything, "ord-1", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("19.98"))
	})).Return(nil)

	in := []ItemInput{{ProductID: "prod-1", ItemQuantity: 2}}
	_, err := uc.ReplaceOrderItems(context.Background(), "ord-1", in)
	require.NoError(t, err)
	_, err = uc.ReplaceOrderItems(context.Background(), "ord-1", in)
	require.NoError(t, err)

	// 合計は両回とも19.98で更新される
	tx.Repos.OrderRepo.AssertNumberOfCalls(t, "UpdateTotal", 2)
	// 2回目は戻し2個・引当2個で在庫は変わらない
	tx.Repos.InventoryRepo.AssertNumberOfCalls(t, "IncreaseStock", 1)
	tx.Repos.InventoryRepo.AssertNumberOfCalls(t, "DecreaseStockIfEnough", 2)
}

func TestListItemsByOrder_OrderMissing(t *testing.T) {
	tx := &TxManagerMock{Repos: newTxReposMock()}
	uc, _, orders := newItemUsecase(tx)

	orders.On("FindByID", mock.Anything, "nope").Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.ListItemsByOrder(context.Background(), "nope")

	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, de.Kind)
}

func TestGetItem_NotFound(t *testing.T) {
	tx := &TxManagerMock{Repos: newTxReposMock()}
	uc, items, _ := newItemUsecase(tx)

	items.On("FindByOrderAndProduct", mock.Anything, "ord-1", "prod-1").Return(model.Item{}, repo.ErrNotFound)

	_, err := uc.GetItem(context.Background(), "ord-1", "prod-1")

	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, de.Kind)
}
