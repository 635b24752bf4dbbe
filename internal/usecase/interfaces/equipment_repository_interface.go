package interfaces

import (
	"context"

	"locaequip/internal/domain/entities"
)

//go:generate mockgen -source=equipment_repository_interface.go -destination=mocks/equipment_repository_mock.go -package=mock_interfaces

// IEquipmentRepository abstracts DynamoDB persistence for Equipment.
//
// GetByName resolves the catalog entry behind an availability query; line
// items reference equipment by name, so the lookup mirrors that.
type IEquipmentRepository interface {
	List(ctx context.Context) ([]entities.Equipment, error)
	GetByID(ctx context.Context, id string) (entities.Equipment, error)
	GetByName(ctx context.Context, name string) (entities.Equipment, error)
	Create(ctx context.Context, e entities.Equipment) (entities.Equipment, error)
	Update(ctx context.Context, e entities.Equipment) (entities.Equipment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
