package handlers

import (
	"errors"
	"net/http"

	request "locaequip/internal/adapter/http/dto/request"
	response "locaequip/internal/adapter/http/dto/response"
	"locaequip/internal/usecase"
	"locaequip/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAvailabilityPayload = pkg.NewDomainErrorSimple("INVALID_AVAILABILITY_INPUT", "Invalid availability payload", http.StatusBadRequest)

// AvailabilityHandler handles HTTP requests for equipment stock checks.
type AvailabilityHandler struct {
	usecase usecase.IAvailabilityUseCase
}

func NewAvailabilityHandler(uc usecase.IAvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{usecase: uc}
}

// CheckAvailability answers a single equipment/period stock question.
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	var payload request.AvailabilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAvailabilityPayload.HTTPStatus, errInvalidAvailabilityPayload.ToHTTPError())
		return
	}

	start, end, err := payload.Period()
	if err != nil {
		c.JSON(errInvalidAvailabilityPayload.HTTPStatus, errInvalidAvailabilityPayload.ToHTTPError())
		return
	}

	availability, err := h.usecase.Check(c.Request.Context(), payload.EquipmentName, start, end, payload.RequestedQuantity)
	if err != nil {
		appErr := mapAvailabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAvailability(availability))
}

// CheckBatchAvailability answers one stock question per requested line.
func (h *AvailabilityHandler) CheckBatchAvailability(c *gin.Context) {
	var payload request.BatchAvailabilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAvailabilityPayload.HTTPStatus, errInvalidAvailabilityPayload.ToHTTPError())
		return
	}

	start, end, err := payload.Period()
	if err != nil {
		c.JSON(errInvalidAvailabilityPayload.HTTPStatus, errInvalidAvailabilityPayload.ToHTTPError())
		return
	}

	queries := make([]usecase.AvailabilityQuery, 0, len(payload.Items))
	for _, item := range payload.Items {
		queries = append(queries, usecase.AvailabilityQuery{
			EquipmentName: item.EquipmentName,
			Quantity:      item.Quantity,
		})
	}

	results, err := h.usecase.CheckMultiple(c.Request.Context(), queries, start, end)
	if err != nil {
		appErr := mapAvailabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromItemAvailabilities(results))
}

func mapAvailabilityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAvailabilityName),
		errors.Is(err, usecase.ErrInvalidAvailabilityPeriod),
		errors.Is(err, usecase.ErrInvalidAvailabilityQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
