package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"locaequip/internal/domain/entities"
	"locaequip/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBudgetNotFound        = errors.New("budget not found")
	ErrBudgetNotPending      = errors.New("budget is not pending")
	ErrInvalidBudgetID       = errors.New("invalid budget id")
	ErrInvalidBudgetClient   = errors.New("invalid budget client")
	ErrInvalidBudgetPeriod   = errors.New("invalid budget period")
	ErrInvalidBudgetDiscount = errors.New("invalid budget discount")
	ErrEmptyBudgetItems      = errors.New("budget has no items")
	ErrInvalidBudgetItem     = errors.New("invalid budget item")
)

// budgetNumberPattern extracts the sequence suffix of ORC-<year>-<seq>.
var budgetNumberPattern = regexp.MustCompile(`^ORC-\d{4}-(\d+)$`)

// IBudgetUseCase exposes budget (orçamento) operations, including the
// approval workflow that promotes a pending budget into a rental.
type IBudgetUseCase interface {
	List(ctx context.Context) ([]entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Update(ctx context.Context, id string, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string, status entities.BudgetStatus) ([]entities.Budget, error)
	Approve(ctx context.Context, id string) (entities.Rental, error)
	Reject(ctx context.Context, id string) (entities.Budget, error)
	GenerateNumber(ctx context.Context) (string, error)
}

type BudgetUseCase struct {
	repo      interfaces.IBudgetRepository
	approvals interfaces.IApprovalRepository
	cache     *AvailabilityCache
	notifier  interfaces.INotifier
	logger    *zap.Logger
	now       func() time.Time
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(
	repo interfaces.IBudgetRepository,
	approvals interfaces.IApprovalRepository,
	cache *AvailabilityCache,
	notifier interfaces.INotifier,
	logger *zap.Logger,
) *BudgetUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cache == nil {
		cache = NewAvailabilityCache()
	}
	return &BudgetUseCase{
		repo:      repo,
		approvals: approvals,
		cache:     cache,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

func (u *BudgetUseCase) List(ctx context.Context) ([]entities.Budget, error) {
	budgets, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(budgets, func(i, j int) bool {
		return budgets[i].CreatedAt.After(budgets[j].CreatedAt)
	})
	return budgets, nil
}

func (u *BudgetUseCase) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Budget{}, ErrInvalidBudgetID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (u *BudgetUseCase) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	if err := validateBudget(&b); err != nil {
		return entities.Budget{}, err
	}

	number, err := u.GenerateNumber(ctx)
	if err != nil {
		return entities.Budget{}, err
	}

	now := u.now().UTC()
	b.ID = uuid.NewString()
	b.Number = number
	if b.Status == "" {
		b.Status = entities.BudgetStatusPendente
	}
	for i := range b.Items {
		b.Items[i].ID = uuid.NewString()
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	b.Recalculate()

	return u.repo.Create(ctx, b)
}

func (u *BudgetUseCase) Update(ctx context.Context, id string, b entities.Budget) (entities.Budget, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if err := validateBudget(&b); err != nil {
		return entities.Budget{}, err
	}

	// Number and creation date are immutable once issued.
	b.ID = existing.ID
	b.Number = existing.Number
	b.CreatedAt = existing.CreatedAt
	if b.Status == "" {
		b.Status = existing.Status
	}
	for i := range b.Items {
		if b.Items[i].ID == "" {
			b.Items[i].ID = uuid.NewString()
		}
	}
	b.UpdatedAt = u.now().UTC()
	b.Recalculate()

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

func (u *BudgetUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidBudgetID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBudgetNotFound
	}
	return nil
}

// Search matches the term case-insensitively against number, client name and
// status, with an optional exact status filter.
func (u *BudgetUseCase) Search(ctx context.Context, term string, status entities.BudgetStatus) ([]entities.Budget, error) {
	budgets, err := u.List(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	filtered := make([]entities.Budget, 0, len(budgets))
	for _, b := range budgets {
		if status != "" && b.Status != status {
			continue
		}
		if term != "" && !matchesAny(term, b.Number, b.ClientName, string(b.Status)) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered, nil
}

// Approve promotes a pending budget into a rental. The rental put and the
// budget delete run in a single transactional write, so listings never show
// both records. The emitted rental starts as Instalação Pendente and keeps
// the budget's client, period, items, values and discount verbatim.
func (u *BudgetUseCase) Approve(ctx context.Context, id string) (entities.Rental, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Rental{}, err
	}
	if b.Status != entities.BudgetStatusPendente {
		return entities.Rental{}, ErrBudgetNotPending
	}

	now := u.now().UTC()
	items := make([]entities.RentalItem, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, entities.RentalItem{
			ID:            uuid.NewString(),
			EquipmentName: it.EquipmentName,
			Quantity:      it.Quantity,
			DailyRate:     it.DailyRate,
			Days:          it.Days,
			Total:         it.Total,
		})
	}

	rental := entities.Rental{
		ID:                   uuid.NewString(),
		ClientID:             b.ClientID,
		ClientName:           b.ClientName,
		StartDate:            b.StartDate,
		EndDate:              b.EndDate,
		InstallationTime:     b.InstallationTime,
		RemovalTime:          b.RemovalTime,
		InstallationLocation: b.InstallationLocation,
		Items:                items,
		TotalValue:           b.Subtotal,
		Discount:             b.Discount,
		FinalValue:           b.Subtotal - b.Discount,
		Status:               entities.RentalStatusInstalacaoPendente,
		Observations:         b.Observations,
		BudgetID:             b.ID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := u.approvals.PromoteToRental(ctx, b.ID, rental); err != nil {
		return entities.Rental{}, err
	}
	u.cache.Invalidate()

	if u.notifier != nil {
		if err := u.notifier.BudgetApproved(ctx, b, rental); err != nil {
			u.logger.Warn("budget approval notification failed",
				zap.String("budget_id", b.ID),
				zap.String("rental_id", rental.ID),
				zap.Error(err))
		}
	}

	return rental, nil
}

// Reject marks a pending budget as Rejeitado. The record is retained.
func (u *BudgetUseCase) Reject(ctx context.Context, id string) (entities.Budget, error) {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.Status != entities.BudgetStatusPendente {
		return entities.Budget{}, ErrBudgetNotPending
	}

	b.Status = entities.BudgetStatusRejeitado
	b.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Budget{}, err
	}
	if updated.ID == "" {
		return entities.Budget{}, ErrBudgetNotFound
	}
	return updated, nil
}

// GenerateNumber issues the next ORC-<year>-<seq> number, scanning the
// numbers already stored for the current calendar year. The sequence resets
// every year. Not safe against concurrent callers; the store only holds a
// single-writer deployment.
func (u *BudgetUseCase) GenerateNumber(ctx context.Context) (string, error) {
	year := u.now().Year()
	numbers, err := u.repo.ListNumbersByYear(ctx, year)
	if err != nil {
		return "", err
	}

	next := 1
	for _, number := range numbers {
		m := budgetNumberPattern.FindStringSubmatch(number)
		if m == nil {
			continue
		}
		seq, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if seq >= next {
			next = seq + 1
		}
	}

	return fmt.Sprintf("ORC-%d-%03d", year, next), nil
}

func validateBudget(b *entities.Budget) error {
	b.ClientID = strings.TrimSpace(b.ClientID)
	b.ClientName = strings.TrimSpace(b.ClientName)
	if b.ClientID == "" || b.ClientName == "" {
		return ErrInvalidBudgetClient
	}
	if b.StartDate.IsZero() || b.EndDate.IsZero() || b.EndDate.Before(b.StartDate) {
		return ErrInvalidBudgetPeriod
	}
	if b.Discount < 0 {
		return ErrInvalidBudgetDiscount
	}
	if len(b.Items) == 0 {
		return ErrEmptyBudgetItems
	}
	for i := range b.Items {
		b.Items[i].EquipmentName = strings.TrimSpace(b.Items[i].EquipmentName)
		if b.Items[i].EquipmentName == "" || b.Items[i].Quantity <= 0 || b.Items[i].DailyRate <= 0 {
			return ErrInvalidBudgetItem
		}
	}
	return nil
}
