package entities

import "time"

// ReservationConflict is one existing rental line that occupies stock of the
// queried equipment during the queried period.
type ReservationConflict struct {
	RentalID   string    `json:"rental_id"`
	ClientName string    `json:"client_name"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Quantity   int       `json:"quantity"`
}

// Availability is the result of a stock check for one equipment type over a
// date range. An unknown equipment name yields TotalStock 0, so it is only
// available when nothing was requested.
type Availability struct {
	EquipmentName     string                `json:"equipment_name"`
	TotalStock        int                   `json:"total_stock"`
	OccupiedQuantity  int                   `json:"occupied_quantity"`
	AvailableQuantity int                   `json:"available_quantity"`
	IsAvailable       bool                  `json:"is_available"`
	Conflicts         []ReservationConflict `json:"conflicts"`
}

// ItemAvailability pairs one requested line with its availability result in
// the batch check. Each line is checked independently; stock is not shared
// across lines.
type ItemAvailability struct {
	EquipmentName string       `json:"equipment_name"`
	Quantity      int          `json:"quantity"`
	Availability  Availability `json:"availability"`
}
