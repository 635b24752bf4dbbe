package request

import (
	"time"
)

type AvailabilityRequest struct {
	EquipmentName     string `json:"equipment_name" binding:"required"`
	StartDate         string `json:"start_date" binding:"required"`
	EndDate           string `json:"end_date" binding:"required"`
	RequestedQuantity int    `json:"requested_quantity"`
}

func (r AvailabilityRequest) Period() (time.Time, time.Time, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

type AvailabilityItemRequest struct {
	EquipmentName string `json:"equipment_name" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required"`
}

// BatchAvailabilityRequest checks several equipment lines over one period,
// each line independently.
type BatchAvailabilityRequest struct {
	StartDate string                    `json:"start_date" binding:"required"`
	EndDate   string                    `json:"end_date" binding:"required"`
	Items     []AvailabilityItemRequest `json:"items" binding:"required"`
}

func (r BatchAvailabilityRequest) Period() (time.Time, time.Time, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
