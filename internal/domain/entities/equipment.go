package entities

import "time"

// EquipmentStatus represents the catalog state of an equipment type.
type EquipmentStatus string

const (
	EquipmentStatusDisponivel   EquipmentStatus = "Disponível"
	EquipmentStatusAlugado      EquipmentStatus = "Alugado"
	EquipmentStatusManutencao   EquipmentStatus = "Manutenção"
	EquipmentStatusIndisponivel EquipmentStatus = "Indisponível"
)

// Equipment is a catalog entry for a rentable equipment type.
//
// Line items reference equipment by name, not by id: renaming an equipment
// does not retroactively rewrite historical budgets or rentals. Stock is the
// total number of units owned and is what the availability check measures
// reservations against.
type Equipment struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	DailyRate   float64         `json:"daily_rate"`
	Stock       int             `json:"stock"`
	Status      EquipmentStatus `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
