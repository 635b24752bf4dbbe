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
	"go.uber.org/zap"
)

var (
	ErrRentalNotFound      = errors.New("rental not found")
	ErrInvalidRentalID     = errors.New("invalid rental id")
	ErrInvalidRentalClient = errors.New("invalid rental client")
	ErrInvalidRentalPeriod = errors.New("invalid rental period")
	ErrEmptyRentalItems    = errors.New("rental has no items")
	ErrInvalidRentalItem   = errors.New("invalid rental item")
)

// IRentalUseCase exposes rental contract operations.
type IRentalUseCase interface {
	List(ctx context.Context) ([]entities.Rental, error)
	GetByID(ctx context.Context, id string) (entities.Rental, error)
	Create(ctx context.Context, r entities.Rental) (entities.Rental, error)
	Update(ctx context.Context, id string, r entities.Rental) (entities.Rental, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string, status entities.RentalStatus) ([]entities.Rental, error)
	RollStatuses(ctx context.Context, now time.Time) (int, error)
}

type RentalUseCase struct {
	repo   interfaces.IRentalRepository
	cache  *AvailabilityCache
	logger *zap.Logger
	now    func() time.Time
}

var _ IRentalUseCase = (*RentalUseCase)(nil)

func NewRentalUseCase(repo interfaces.IRentalRepository, cache *AvailabilityCache, logger *zap.Logger) *RentalUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = NewAvailabilityCache()
	}
	return &RentalUseCase{repo: repo, cache: cache, logger: logger, now: time.Now}
}

func (u *RentalUseCase) List(ctx context.Context) ([]entities.Rental, error) {
	rentals, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rentals, func(i, j int) bool {
		return rentals[i].CreatedAt.After(rentals[j].CreatedAt)
	})
	return rentals, nil
}

func (u *RentalUseCase) GetByID(ctx context.Context, id string) (entities.Rental, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Rental{}, ErrInvalidRentalID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Rental{}, err
	}
	if r.ID == "" {
		return entities.Rental{}, ErrRentalNotFound
	}
	return r, nil
}

func (u *RentalUseCase) Create(ctx context.Context, r entities.Rental) (entities.Rental, error) {
	if err := validateRental(&r); err != nil {
		return entities.Rental{}, err
	}

	now := u.now().UTC()
	r.ID = uuid.NewString()
	if r.Status == "" {
		r.Status = entities.RentalStatusInstalacaoPendente
	}
	for i := range r.Items {
		r.Items[i].ID = uuid.NewString()
	}
	r.CreatedAt = now
	r.UpdatedAt = now
	r.Recalculate()

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Rental{}, err
	}
	u.cache.Invalidate()
	return created, nil
}

func (u *RentalUseCase) Update(ctx context.Context, id string, r entities.Rental) (entities.Rental, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Rental{}, err
	}
	if err := validateRental(&r); err != nil {
		return entities.Rental{}, err
	}

	r.ID = existing.ID
	r.BudgetID = existing.BudgetID
	r.CreatedAt = existing.CreatedAt
	if r.Status == "" {
		r.Status = existing.Status
	}
	for i := range r.Items {
		if r.Items[i].ID == "" {
			r.Items[i].ID = uuid.NewString()
		}
	}
	r.UpdatedAt = u.now().UTC()
	r.Recalculate()

	updated, err := u.repo.Update(ctx, r)
	if err != nil {
		return entities.Rental{}, err
	}
	if updated.ID == "" {
		return entities.Rental{}, ErrRentalNotFound
	}
	u.cache.Invalidate()
	return updated, nil
}

func (u *RentalUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRentalID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRentalNotFound
	}
	u.cache.Invalidate()
	return nil
}

// Search matches the term case-insensitively against client name and status,
// with an optional exact status filter.
func (u *RentalUseCase) Search(ctx context.Context, term string, status entities.RentalStatus) ([]entities.Rental, error) {
	rentals, err := u.List(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	filtered := make([]entities.Rental, 0, len(rentals))
	for _, r := range rentals {
		if status != "" && r.Status != status {
			continue
		}
		if term != "" && !matchesAny(term, r.ClientName, string(r.Status)) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

// RollStatuses walks every rental and advances the ones whose dates have
// passed: Instalação Pendente becomes Ativo on the start date, Ativo becomes
// Concluído after the end date. Returns how many rentals changed.
func (u *RentalUseCase) RollStatuses(ctx context.Context, now time.Time) (int, error) {
	rentals, err := u.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	changed := 0
	for _, r := range rentals {
		var next entities.RentalStatus
		switch {
		case r.Status == entities.RentalStatusInstalacaoPendente && !r.StartDate.After(today):
			next = entities.RentalStatusAtivo
		case r.Status == entities.RentalStatusAtivo && r.EndDate.Before(today):
			next = entities.RentalStatusConcluido
		default:
			continue
		}

		r.Status = next
		r.UpdatedAt = now.UTC()
		if _, err := u.repo.Update(ctx, r); err != nil {
			return changed, err
		}
		u.logger.Info("rental status advanced",
			zap.String("rental_id", r.ID),
			zap.String("status", string(next)))
		changed++
	}

	if changed > 0 {
		u.cache.Invalidate()
	}
	return changed, nil
}

func validateRental(r *entities.Rental) error {
	r.ClientID = strings.TrimSpace(r.ClientID)
	r.ClientName = strings.TrimSpace(r.ClientName)
	if r.ClientID == "" || r.ClientName == "" {
		return ErrInvalidRentalClient
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() || r.EndDate.Before(r.StartDate) {
		return ErrInvalidRentalPeriod
	}
	if len(r.Items) == 0 {
		return ErrEmptyRentalItems
	}
	for i := range r.Items {
		r.Items[i].EquipmentName = strings.TrimSpace(r.Items[i].EquipmentName)
		if r.Items[i].EquipmentName == "" || r.Items[i].Quantity <= 0 || r.Items[i].DailyRate <= 0 {
			return ErrInvalidRentalItem
		}
	}
	return nil
}
