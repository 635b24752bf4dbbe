package interfaces

import (
	"context"

	"locaequip/internal/domain/entities"
)

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/client_repository_mock.go -package=mock_interfaces

// IClientRepository abstracts DynamoDB persistence for Client.
//
// Read methods return the zero value with a nil error when the record does
// not exist; Delete reports whether anything was removed.
type IClientRepository interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
}
