package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"locaequip/internal/domain/entities"
	"locaequip/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEquipmentNotFound    = errors.New("equipment not found")
	ErrInvalidEquipmentID   = errors.New("invalid equipment id")
	ErrInvalidEquipmentName = errors.New("invalid equipment name")
	ErrInvalidDailyRate     = errors.New("invalid daily rate")
	ErrInvalidStock         = errors.New("invalid stock")
)

// IEquipmentUseCase exposes equipment catalog operations.
type IEquipmentUseCase interface {
	List(ctx context.Context) ([]entities.Equipment, error)
	GetByID(ctx context.Context, id string) (entities.Equipment, error)
	Create(ctx context.Context, e entities.Equipment) (entities.Equipment, error)
	Update(ctx context.Context, id string, e entities.Equipment) (entities.Equipment, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term, category string, status entities.EquipmentStatus) ([]entities.Equipment, error)
}

type EquipmentUseCase struct {
	repo interfaces.IEquipmentRepository
	now  func() time.Time
}

var _ IEquipmentUseCase = (*EquipmentUseCase)(nil)

func NewEquipmentUseCase(repo interfaces.IEquipmentRepository) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, now: time.Now}
}

func (u *EquipmentUseCase) List(ctx context.Context) ([]entities.Equipment, error) {
	equipments, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(equipments, func(i, j int) bool {
		return equipments[i].Name < equipments[j].Name
	})
	return equipments, nil
}

func (u *EquipmentUseCase) GetByID(ctx context.Context, id string) (entities.Equipment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Equipment{}, ErrInvalidEquipmentID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}
	if e.ID == "" {
		return entities.Equipment{}, ErrEquipmentNotFound
	}
	return e, nil
}

func (u *EquipmentUseCase) Create(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	if err := validateEquipment(&e); err != nil {
		return entities.Equipment{}, err
	}

	now := u.now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.repo.Create(ctx, e)
}

func (u *EquipmentUseCase) Update(ctx context.Context, id string, e entities.Equipment) (entities.Equipment, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}
	if err := validateEquipment(&e); err != nil {
		return entities.Equipment{}, err
	}

	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Equipment{}, err
	}
	if updated.ID == "" {
		return entities.Equipment{}, ErrEquipmentNotFound
	}
	return updated, nil
}

func (u *EquipmentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEquipmentID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEquipmentNotFound
	}
	return nil
}

// Search matches the term case-insensitively against name and description,
// with optional exact-match category and status filters.
func (u *EquipmentUseCase) Search(ctx context.Context, term, category string, status entities.EquipmentStatus) ([]entities.Equipment, error) {
	equipments, err := u.List(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	filtered := make([]entities.Equipment, 0, len(equipments))
	for _, e := range equipments {
		if category != "" && e.Category != category {
			continue
		}
		if status != "" && e.Status != status {
			continue
		}
		if term != "" && !matchesAny(term, e.Name, e.Description) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

func validateEquipment(e *entities.Equipment) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return ErrInvalidEquipmentName
	}
	if e.DailyRate <= 0 {
		return ErrInvalidDailyRate
	}
	if e.Stock < 0 {
		return ErrInvalidStock
	}
	if e.Status == "" {
		e.Status = entities.EquipmentStatusDisponivel
	}
	return nil
}
