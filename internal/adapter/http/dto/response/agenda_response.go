package response

import (
	"locaequip/internal/domain/entities"
)

type AgendaEventResponse struct {
	RentalID   string `json:"rental_id"`
	Type       string `json:"type"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	ClientName string `json:"client_name"`
	Location   string `json:"location"`
	Status     string `json:"status"`
}

func FromAgendaEvents(events []entities.AgendaEvent) []AgendaEventResponse {
	out := make([]AgendaEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, AgendaEventResponse{
			RentalID:   e.RentalID,
			Type:       string(e.Type),
			Date:       e.Date.Format(entities.DateLayout),
			Time:       e.Time,
			ClientName: e.ClientName,
			Location:   e.Location,
			Status:     string(e.Status),
		})
	}
	return out
}
