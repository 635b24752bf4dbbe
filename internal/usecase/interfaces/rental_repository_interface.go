package interfaces

import (
	"context"

	"locaequip/internal/domain/entities"
)

//go:generate mockgen -source=rental_repository_interface.go -destination=mocks/rental_repository_mock.go -package=mock_interfaces

// IRentalRepository abstracts DynamoDB persistence for Rental.
type IRentalRepository interface {
	List(ctx context.Context) ([]entities.Rental, error)
	GetByID(ctx context.Context, id string) (entities.Rental, error)
	Create(ctx context.Context, r entities.Rental) (entities.Rental, error)
	Update(ctx context.Context, r entities.Rental) (entities.Rental, error)
	Delete(ctx context.Context, id string) (bool, error)
}
