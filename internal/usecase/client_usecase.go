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
	ErrClientNotFound        = errors.New("client not found")
	ErrInvalidClientID       = errors.New("invalid client id")
	ErrInvalidClientName     = errors.New("invalid client name")
	ErrInvalidClientDocument = errors.New("invalid client document")
)

// IClientUseCase exposes client registry operations.
type IClientUseCase interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, id string, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, term string, documentType entities.DocumentType) ([]entities.Client, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
	now  func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, now: time.Now}
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].CreatedAt.After(clients[j].CreatedAt)
	})
	return clients, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := validateClient(&c); err != nil {
		return entities.Client{}, err
	}

	now := u.now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) Update(ctx context.Context, id string, c entities.Client) (entities.Client, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if err := validateClient(&c); err != nil {
		return entities.Client{}, err
	}

	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = u.now().UTC()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrClientNotFound
	}
	return nil
}

// Search matches the term case-insensitively against name, email, phone and
// document number, optionally narrowed to one document type.
func (u *ClientUseCase) Search(ctx context.Context, term string, documentType entities.DocumentType) ([]entities.Client, error) {
	clients, err := u.List(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	filtered := make([]entities.Client, 0, len(clients))
	for _, c := range clients {
		if documentType != "" && c.DocumentType != documentType {
			continue
		}
		if term != "" && !matchesAny(term, c.Name, c.Email, c.Phone, c.DocumentNumber) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered, nil
}

func validateClient(c *entities.Client) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrInvalidClientName
	}
	switch c.DocumentType {
	case entities.DocumentTypeCPF, entities.DocumentTypeCNPJ:
	default:
		return ErrInvalidClientDocument
	}
	return nil
}

func matchesAny(lowerTerm string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowerTerm) {
			return true
		}
	}
	return false
}
