package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"locaequip/internal/domain/entities"
	"locaequip/internal/usecase/interfaces"
)

var (
	ErrInvalidAvailabilityName     = errors.New("invalid equipment name")
	ErrInvalidAvailabilityPeriod   = errors.New("invalid availability period")
	ErrInvalidAvailabilityQuantity = errors.New("invalid requested quantity")
)

// AvailabilityQuery is one line of the batch availability check.
type AvailabilityQuery struct {
	EquipmentName string
	Quantity      int
}

// IAvailabilityUseCase answers how much stock of an equipment type is free
// over a date range, given the overlapping reservations held by rentals.
type IAvailabilityUseCase interface {
	Check(ctx context.Context, equipmentName string, start, end time.Time, requestedQuantity int) (entities.Availability, error)
	CheckMultiple(ctx context.Context, items []AvailabilityQuery, start, end time.Time) ([]entities.ItemAvailability, error)
}

type AvailabilityUseCase struct {
	equipments interfaces.IEquipmentRepository
	rentals    interfaces.IRentalRepository
	cache      *AvailabilityCache
}

var _ IAvailabilityUseCase = (*AvailabilityUseCase)(nil)

func NewAvailabilityUseCase(
	equipments interfaces.IEquipmentRepository,
	rentals interfaces.IRentalRepository,
	cache *AvailabilityCache,
) *AvailabilityUseCase {
	if cache == nil {
		cache = NewAvailabilityCache()
	}
	return &AvailabilityUseCase{equipments: equipments, rentals: rentals, cache: cache}
}

func (u *AvailabilityUseCase) Check(ctx context.Context, equipmentName string, start, end time.Time, requestedQuantity int) (entities.Availability, error) {
	equipmentName = strings.TrimSpace(equipmentName)
	if equipmentName == "" {
		return entities.Availability{}, ErrInvalidAvailabilityName
	}
	if start.IsZero() || end.IsZero() {
		return entities.Availability{}, ErrInvalidAvailabilityPeriod
	}
	if requestedQuantity < 0 {
		return entities.Availability{}, ErrInvalidAvailabilityQuantity
	}

	key := cacheKey(equipmentName, start, end, requestedQuantity)
	if cached, ok := u.cache.get(key); ok {
		return cached, nil
	}

	// Unknown equipment is not an error: it reads as zero stock.
	equipment, err := u.equipments.GetByName(ctx, equipmentName)
	if err != nil {
		return entities.Availability{}, err
	}
	totalStock := equipment.Stock

	rentals, err := u.rentals.List(ctx)
	if err != nil {
		return entities.Availability{}, err
	}

	occupied := 0
	conflicts := make([]entities.ReservationConflict, 0)
	for _, r := range rentals {
		if !entities.RangesOverlap(r.StartDate, r.EndDate, start, end) {
			continue
		}
		for _, item := range r.Items {
			if item.EquipmentName != equipmentName {
				continue
			}
			occupied += item.Quantity
			conflicts = append(conflicts, entities.ReservationConflict{
				RentalID:   r.ID,
				ClientName: r.ClientName,
				StartDate:  r.StartDate,
				EndDate:    r.EndDate,
				Quantity:   item.Quantity,
			})
		}
	}

	available := totalStock - occupied
	if available < 0 {
		available = 0
	}

	result := entities.Availability{
		EquipmentName:     equipmentName,
		TotalStock:        totalStock,
		OccupiedQuantity:  occupied,
		AvailableQuantity: available,
		IsAvailable:       available >= requestedQuantity,
		Conflicts:         conflicts,
	}
	u.cache.set(key, result)
	return result, nil
}

// CheckMultiple applies the single check to each line independently; it does
// not model two lines competing for the same stock.
func (u *AvailabilityUseCase) CheckMultiple(ctx context.Context, items []AvailabilityQuery, start, end time.Time) ([]entities.ItemAvailability, error) {
	results := make([]entities.ItemAvailability, 0, len(items))
	for _, item := range items {
		availability, err := u.Check(ctx, item.EquipmentName, start, end, item.Quantity)
		if err != nil {
			return nil, err
		}
		results = append(results, entities.ItemAvailability{
			EquipmentName: item.EquipmentName,
			Quantity:      item.Quantity,
			Availability:  availability,
		})
	}
	return results, nil
}

func cacheKey(name string, start, end time.Time, quantity int) string {
	return fmt.Sprintf("%s|%s|%s|%d", name, start.Format(entities.DateLayout), end.Format(entities.DateLayout), quantity)
}
