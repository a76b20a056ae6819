//go:generate mockery --name=CustomerRepository --output=../mocks --case=underscore
package domain

import "context"

type CustomerRepository interface {
	ListCustomers(ctx context.Context, f Filter) ([]CustomerRow, error)
	GetCustomer(ctx context.Context, id int64) (*Customer, error)
	CreateCustomer(ctx context.Context, c Customer) (int64, error)
	UpdateCustomer(ctx context.Context, id int64, c Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
}
