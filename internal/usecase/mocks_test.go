package usecase

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Delete(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID string, statusID string) error {
	args := m.Called(ctx, orderID, statusID)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateTotal(ctx context.Context, orderID string, total decimal.Decimal) error {
	args := m.Called(ctx, orderID, total)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateAttachment(ctx context.Context, orderID string, key *string) error {
	args := m.Called(ctx, orderID, key)
	return args.Error(0)
}

func (m *OrderRepoMock) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]model.Order)
	return rows, args.Error(1)
}

func (m *OrderRepoMock) Count(ctx context.Context, f repo.OrderListFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

type ItemRepoMock struct{ mock.Mock }

func (m *ItemRepoMock) FindByOrderAndProduct(ctx context.Context, orderID string, productID string) (model.Item, error) {
	args := m.Called(ctx, orderID, productID)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

func (m *ItemRepoMock) ListByOrderID(ctx context.Context, orderID string) ([]model.Item, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Error(1)
}

func (m *ItemRepoMock) ListAll(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Error(1)
}

func (m *ItemRepoMock) Create(ctx context.Context, item model.Item) (model.Item, error) {
	args := m.Called(ctx, item)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

func (m *ItemRepoMock) DeleteByOrderID(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) FindByID(ctx context.Context, productID string) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *ProductRepoMock) SearchByName(ctx context.Context, nameQuery string) ([]model.Product, error) {
	args := m.Called(ctx, nameQuery)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID string, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *InventoryRepoMock) IncreaseStock(ctx context.Context, productID string, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

type PriceRepoMock struct{ mock.Mock }

func (m *PriceRepoMock) FindByID(ctx context.Context, priceID string) (model.Price, error) {
	args := m.Called(ctx, priceID)
	p, _ := args.Get(0).(model.Price)
	return p, args.Error(1)
}

func (m *PriceRepoMock) FindEffective(ctx context.Context, productID string, onDate time.Time) (model.Price, error) {
	args := m.Called(ctx, productID, onDate)
	p, _ := args.Get(0).(model.Price)
	return p, args.Error(1)
}

func (m *PriceRepoMock) ListAll(ctx context.Context) ([]model.Price, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Price)
	return ps, args.Error(1)
}

func (m *PriceRepoMock) ListByProductID(ctx context.Context, productID string) ([]model.Price, error) {
	args := m.Called(ctx, productID)
	ps, _ := args.Get(0).([]model.Price)
	return ps, args.Error(1)
}

func (m *PriceRepoMock) Create(ctx context.Context, p model.Price) (model.Price, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Price)
	return created, args.Error(1)
}

func (m *PriceRepoMock) Update(ctx context.Context, p model.Price) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PriceRepoMock) Delete(ctx context.Context, priceID string) error {
	args := m.Called(ctx, priceID)
	return args.Error(0)
}

type StatusRepoMock struct{ mock.Mock }

func (m *StatusRepoMock) FindByID(ctx context.Context, statusID string) (model.Status, error) {
	args := m.Called(ctx, statusID)
	s, _ := args.Get(0).(model.Status)
	return s, args.Error(1)
}

func (m *StatusRepoMock) FindByCode(ctx context.Context, statusCode string) (model.Status, error) {
	args := m.Called(ctx, statusCode)
	s, _ := args.Get(0).(model.Status)
	return s, args.Error(1)
}

func (m *StatusRepoMock) ListAll(ctx context.Context) ([]model.Status, error) {
	args := m.Called(ctx)
	ss, _ := args.Get(0).([]model.Status)
	return ss, args.Error(1)
}

func (m *StatusRepoMock) Create(ctx context.Context, s model.Status) (model.Status, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Status)
	return created, args.Error(1)
}

func (m *StatusRepoMock) Update(ctx context.Context, s model.Status) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *StatusRepoMock) Delete(ctx context.Context, statusID string) error {
	args := m.Called(ctx, statusID)
	return args.Error(0)
}

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) FindByID(ctx context.Context, customerID string) (model.Customer, error) {
	args := m.Called(ctx, customerID)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) FindByEmail(ctx context.Context, email string) (model.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) ExistsByID(ctx context.Context, customerID string) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

func (m *CustomerRepoMock) ListAll(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]model.Customer)
	return cs, args.Error(1)
}

func (m *CustomerRepoMock) Search(ctx context.Context, q repo.CustomerSearch) ([]model.Customer, error) {
	args := m.Called(ctx, q)
	cs, _ := args.Get(0).([]model.Customer)
	return cs, args.Error(1)
}

func (m *CustomerRepoMock) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Customer)
	return created, args.Error(1)
}

func (m *CustomerRepoMock) Update(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepoMock) Delete(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) FindByID(ctx context.Context, userID string) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByAccount(ctx context.Context, account string) (model.User, error) {
	args := m.Called(ctx, account)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) ExistsByID(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepoMock) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	us, _ := args.Get(0).([]model.User)
	return us, args.Error(1)
}

func (m *UserRepoMock) Search(ctx context.Context, q repo.UserSearch) ([]model.User, error) {
	args := m.Called(ctx, q)
	us, _ := args.Get(0).([]model.User)
	return us, args.Error(1)
}

func (m *UserRepoMock) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	created, _ := args.Get(0).(model.User)
	return created, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, u model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepoMock) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *UserRepoMock) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// =====================
// TxManager
// =====================

// WithinTxは同じリポジトリ一式をそのまま渡すだけ。
// rollbackの検証は「エラーが伝播すること」で代替する。
type TxReposMock struct {
	OrderRepo     *OrderRepoMock
	ItemRepo      *ItemRepoMock
	ProductRepo   *ProductRepoMock
	PriceRepo     *PriceRepoMock
	StatusRepo    *StatusRepoMock
	InventoryRepo *InventoryRepoMock
}

func newTxReposMock() *TxReposMock {
	return &TxReposMock{
		OrderRepo:     new(OrderRepoMock),
		ItemRepo:      new(ItemRepoMock),
		ProductRepo:   new(ProductRepoMock),
		PriceRepo:     new(PriceRepoMock),
		StatusRepo:    new(StatusRepoMock),
		InventoryRepo: new(InventoryRepoMock),
	}
}

func (r *TxReposMock) Orders() repo.OrderRepository        { return r.OrderRepo }
func (r *TxReposMock) Items() repo.ItemRepository          { return r.ItemRepo }
func (r *TxReposMock) Products() repo.ProductRepository    { return r.ProductRepo }
func (r *TxReposMock) Prices() repo.PriceRepository        { return r.PriceRepo }
func (r *TxReposMock) Statuses() repo.StatusRepository     { return r.StatusRepo }
func (r *TxReposMock) Inventory() repo.InventoryRepository { return r.InventoryRepo }

type TxManagerMock struct {
	Repos *TxReposMock
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.Repos)
}

// =====================
// Clock
// =====================

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }
