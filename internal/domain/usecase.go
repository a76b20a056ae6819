//go:generate mockery --name=CustomerUsecase --output=../mocks --case=underscore
package domain

import "context"

type CustomerUsecase interface {
	List(ctx context.Context, f Filter) ([]CustomerRow, error)
	Get(ctx context.Context, id int64) (*Customer, error)
	Create(ctx context.Context, c Customer) (int64, error)
	Update(ctx context.Context, id int64, c Customer) error
	Delete(ctx context.Context, id int64) error
}
