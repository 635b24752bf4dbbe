package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"locaequip/internal/domain/entities"
	"locaequip/internal/usecase/interfaces"
)

var ErrInvalidAgendaPeriod = errors.New("invalid agenda period")

// IAgendaUseCase serves the calendar view: the installation and removal
// events implied by the stored rentals.
type IAgendaUseCase interface {
	ListEvents(ctx context.Context, from, to time.Time) ([]entities.AgendaEvent, error)
}

type AgendaUseCase struct {
	rentals interfaces.IRentalRepository
}

var _ IAgendaUseCase = (*AgendaUseCase)(nil)

func NewAgendaUseCase(rentals interfaces.IRentalRepository) *AgendaUseCase {
	return &AgendaUseCase{rentals: rentals}
}

// ListEvents derives both events of every rental and keeps the ones whose
// date falls inside [from, to], ordered by date and time.
func (u *AgendaUseCase) ListEvents(ctx context.Context, from, to time.Time) ([]entities.AgendaEvent, error) {
	if from.IsZero() || to.IsZero() {
		return nil, ErrInvalidAgendaPeriod
	}
	if to.Before(from) {
		from, to = to, from
	}

	rentals, err := u.rentals.List(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]entities.AgendaEvent, 0, 2*len(rentals))
	for _, r := range rentals {
		for _, event := range entities.EventsFromRental(r) {
			if event.Date.Before(from) || event.Date.After(to) {
				continue
			}
			events = append(events, event)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].Time < events[j].Time
	})
	return events, nil
}
