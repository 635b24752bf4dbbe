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

var errInvalidAgendaPeriod = pkg.NewDomainErrorSimple("INVALID_AGENDA_PERIOD", "Invalid agenda period", http.StatusBadRequest)

// AgendaHandler serves the derived installation/removal calendar.
type AgendaHandler struct {
	usecase usecase.IAgendaUseCase
}

func NewAgendaHandler(uc usecase.IAgendaUseCase) *AgendaHandler {
	return &AgendaHandler{usecase: uc}
}

// ListEvents returns the events between the "from" and "to" query dates.
func (h *AgendaHandler) ListEvents(c *gin.Context) {
	from, err := request.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(errInvalidAgendaPeriod.HTTPStatus, errInvalidAgendaPeriod.ToHTTPError())
		return
	}
	to, err := request.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(errInvalidAgendaPeriod.HTTPStatus, errInvalidAgendaPeriod.ToHTTPError())
		return
	}

	events, err := h.usecase.ListEvents(c.Request.Context(), from, to)
	if err != nil {
		appErr := mapAgendaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAgendaEvents(events))
}

func mapAgendaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAgendaPeriod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
