package entities

import "time"

// AgendaEventType distinguishes the two calendar events derived from a rental.
type AgendaEventType string

const (
	AgendaEventInstalacao AgendaEventType = "Instalação"
	AgendaEventRetirada   AgendaEventType = "Retirada"
)

// AgendaEvent is a derived calendar entry. Events are never stored: every
// rental implies an installation event on its start date and a removal event
// on its end date.
type AgendaEvent struct {
	RentalID   string          `json:"rental_id"`
	Type       AgendaEventType `json:"type"`
	Date       time.Time       `json:"date"`
	Time       string          `json:"time"`
	ClientName string          `json:"client_name"`
	Location   string          `json:"location"`
	Status     RentalStatus    `json:"status"`
}

// EventsFromRental derives the installation and removal events for a rental.
func EventsFromRental(r Rental) []AgendaEvent {
	return []AgendaEvent{
		{
			RentalID:   r.ID,
			Type:       AgendaEventInstalacao,
			Date:       r.StartDate,
			Time:       r.InstallationTime,
			ClientName: r.ClientName,
			Location:   r.InstallationLocation,
			Status:     r.Status,
		},
		{
			RentalID:   r.ID,
			Type:       AgendaEventRetirada,
			Date:       r.EndDate,
			Time:       r.RemovalTime,
			ClientName: r.ClientName,
			Location:   r.InstallationLocation,
			Status:     r.Status,
		},
	}
}
