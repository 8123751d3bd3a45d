package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/validator"
)

type CustomerUsecase struct {
	customers repo.CustomerRepository
}

func NewCustomerUsecase(customers repo.CustomerRepository) *CustomerUsecase {
	return &CustomerUsecase{customers: customers}
}

type CreateCustomerInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

type UpdateCustomerInput struct {
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
}

type CustomerOutput struct {
	CustomerID    string    `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toCustomerOutput(c model.Customer) CustomerOutput {
	return CustomerOutput{
		CustomerID:    c.CustomerID,
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		CustomerPhone: c.CustomerPhone,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (u *CustomerUsecase) CreateCustomer(ctx context.Context, in CreateCustomerInput) (CustomerOutput, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" || len(name) > 50 {
		return CustomerOutput{}, NewValidationError("invalid customerName")
	}
	if err := validator.ValidateEmail(in.CustomerEmail); err != nil {
		return CustomerOutput{}, NewValidationError("invalid customerEmail")
	}
	phone, err := validator.NormalizePhone(in.CustomerPhone)
	if err != nil {
		return CustomerOutput{}, NewValidationError("Invalid phone number")
	}

	created, err := u.customers.Create(ctx, model.Customer{
		CustomerName:  name,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: phone,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return CustomerOutput{}, NewDuplicateError("Email already exists")
	}
	if err != nil {
		return CustomerOutput{}, err
	}
	return toCustomerOutput(created), nil
}

func (u *CustomerUsecase) GetCustomer(ctx context.Context, customerID string) (CustomerOutput, error) {
	c, err := u.customers.FindByID(ctx, customerID)
	if errors.Is(err, repo.ErrNotFound) {
		return CustomerOutput{}, NewNotFoundError("Customer not found")
	}
	if err != nil {
		return CustomerOutput{}, err
	}
	return toCustomerOutput(c), nil
}

func (u *CustomerUsecase) GetCustomerByEmail(ctx context.Context, email string) (CustomerOutput, error) {
	if err := validator.ValidateEmail(email); err != nil {
		return CustomerOutput{}, NewValidationError("invalid customerEmail")
	}
	c, err := u.customers.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return CustomerOutput{}, NewNotFoundError("Customer not found")
	}
	if err != nil {
		return CustomerOutput{}, err
	}
	return toCustomerOutput(c), nil
}

// 検索条件が全部空なら全件
func (u *CustomerUsecase) ListCustomers(ctx context.Context, q repo.CustomerSearch) ([]CustomerOutput, error) {
	var (
		items []model.Customer
		err   error
	)
	if q.Name != "" || q.Email != "" || q.Phone != "" {
		items, err = u.customers.Search(ctx, q)
	} else {
		items, err = u.customers.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	outs := make([]CustomerOutput, 0, len(items))
	for _, c := range items {
		outs = append(outs, toCustomerOutput(c))
	}
	return outs, nil
}

func (u *CustomerUsecase) UpdateCustomer(ctx context.Context, customerID string, in UpdateCustomerInput) (CustomerOutput, error) {
	c, err := u.customers.FindByID(ctx, customerID)
	if errors.Is(err, repo.ErrNotFound) {
		return CustomerOutput{}, NewNotFoundError("Customer not found")
	}
	if err != nil {
		return CustomerOutput{}, err
	}

	if in.CustomerName != nil {
		name := strings.TrimSpace(*in.CustomerName)
		if name == "" || len(name) > 50 {
			return CustomerOutput{}, NewValidationError("invalid customerName")
		}
		c.CustomerName = name
	}
	if in.CustomerEmail != nil {
		if err := validator.ValidateEmail(*in.CustomerEmail); err != nil {
			return CustomerOutput{}, NewValidationError("invalid customerEmail")
		}
		c.CustomerEmail = *in.CustomerEmail
	}
	if in.CustomerPhone != nil {
		phone, err := validator.NormalizePhone(*in.CustomerPhone)
		if err != nil {
			return CustomerOutput{}, NewValidationError("Invalid phone number")
		}
		c.CustomerPhone = phone
	}

	err = u.customers.Update(ctx, c)
	if errors.Is(err, repo.ErrDuplicate) {
		return CustomerOutput{}, NewDuplicateError("Email already exists")
	}
	if err != nil {
		return CustomerOutput{}, err
	}
	return toCustomerOutput(c), nil
}

func (u *CustomerUsecase) DeleteCustomer(ctx context.Context, customerID string) error {
	err := u.customers.Delete(ctx, customerID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewNotFoundError("Customer not found")
	}
	return err
}
