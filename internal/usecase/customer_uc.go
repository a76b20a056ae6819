package usecase

import (
	"context"
	"fmt"

	"custsvc/internal/domain"
)

type customerUC struct{ repo domain.CustomerRepository }

func NewCustomerUC(r domain.CustomerRepository) domain.CustomerUsecase { return &customerUC{repo: r} }

func (u *customerUC) List(ctx context.Context, f domain.Filter) ([]domain.CustomerRow, error) {
	rows, err := u.repo.ListCustomers(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	if rows == nil {
		rows = []domain.CustomerRow{}
	}
	return rows, nil
}

func (u *customerUC) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := u.repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return c, nil
}

func (u *customerUC) Create(ctx context.Context, c domain.Customer) (int64, error) {
	id, err := u.repo.CreateCustomer(ctx, c)
	if err != nil {
		return 0, fmt.Errorf("create customer: %w", err)
	}
	return id, nil
}

func (u *customerUC) Update(ctx context.Context, id int64, c domain.Customer) error {
	if err := u.repo.UpdateCustomer(ctx, id, c); err != nil {
		return fmt.Errorf("update customer %d: %w", id, err)
	}
	return nil
}

func (u *customerUC) Delete(ctx context.Context, id int64) error {
	if err := u.repo.DeleteCustomer(ctx, id); err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	return nil
}
