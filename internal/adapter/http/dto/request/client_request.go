package request

import (
	"locaequip/internal/domain/entities"
)

type ClientRequest struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	DocumentType   string `json:"document_type" binding:"required"`
	DocumentNumber string `json:"document_number"`
	Observations   string `json:"observations"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:           r.Name,
		Phone:          r.Phone,
		Email:          r.Email,
		DocumentType:   entities.DocumentType(r.DocumentType),
		DocumentNumber: r.DocumentNumber,
		Observations:   r.Observations,
	}
}
