package handlers

import (
	"errors"
	"net/http"

	request "locaequip/internal/adapter/http/dto/request"
	response "locaequip/internal/adapter/http/dto/response"
	"locaequip/internal/domain/entities"
	"locaequip/internal/usecase"
	"locaequip/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRentalPayload = pkg.NewDomainErrorSimple("INVALID_RENTAL_INPUT", "Invalid rental payload", http.StatusBadRequest)

// RentalHandler handles HTTP requests for rental contracts.
type RentalHandler struct {
	usecase usecase.IRentalUseCase
}

func NewRentalHandler(uc usecase.IRentalUseCase) *RentalHandler {
	return &RentalHandler{usecase: uc}
}

func (h *RentalHandler) ListRentals(c *gin.Context) {
	term := c.Query("q")
	status := c.Query("status")

	if term == "" && status == "" {
		rentals, err := h.usecase.List(c.Request.Context())
		if err != nil {
			appErr := mapRentalError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromRentals(rentals))
		return
	}

	rentals, err := h.usecase.Search(c.Request.Context(), term, entities.RentalStatus(status))
	if err != nil {
		appErr := mapRentalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRentals(rentals))
}

func (h *RentalHandler) GetRental(c *gin.Context) {
	rental, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRentalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRental(rental))
}

func (h *RentalHandler) CreateRental(c *gin.Context) {
	var payload request.RentalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRentalPayload.HTTPStatus, errInvalidRentalPayload.ToHTTPError())
		return
	}

	rental, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidRentalPayload.HTTPStatus, errInvalidRentalPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), rental)
	if err != nil {
		appErr := mapRentalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromRental(created))
}

func (h *RentalHandler) UpdateRental(c *gin.Context) {
	var payload request.RentalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRentalPayload.HTTPStatus, errInvalidRentalPayload.ToHTTPError())
		return
	}

	rental, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidRentalPayload.HTTPStatus, errInvalidRentalPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), rental)
	if err != nil {
		appErr := mapRentalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRental(updated))
}

func (h *RentalHandler) DeleteRental(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapRentalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapRentalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRentalID),
		errors.Is(err, usecase.ErrInvalidRentalClient),
		errors.Is(err, usecase.ErrInvalidRentalPeriod),
		errors.Is(err, usecase.ErrEmptyRentalItems),
		errors.Is(err, usecase.ErrInvalidRentalItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRentalNotFound):
		return pkg.NewDomainErrorSimple("RENTAL_NOT_FOUND", "Rental not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
