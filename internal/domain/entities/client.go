package entities

import "time"

// DocumentType is the Brazilian tax document kind attached to a client.
type DocumentType string

const (
	DocumentTypeCPF  DocumentType = "CPF"
	DocumentTypeCNPJ DocumentType = "CNPJ"
)

// Client is a customer that budgets and rentals reference by id. Budgets and
// rentals also carry a ClientName snapshot taken at creation time; the
// snapshot is never synced back when the client record is renamed.
type Client struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Phone          string       `json:"phone"`
	Email          string       `json:"email"`
	DocumentType   DocumentType `json:"document_type"`
	DocumentNumber string       `json:"document_number"`
	Observations   string       `json:"observations"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
