package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "locaequip/internal/adapter/http/dto/request"
	response "locaequip/internal/adapter/http/dto/response"
	"locaequip/internal/usecase"
	"locaequip/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReportPeriod = pkg.NewDomainErrorSimple("INVALID_REPORT_PERIOD", "Invalid report period", http.StatusBadRequest)

// ReportHandler serves period reports and the dashboard counters.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// GetReport builds the report either for an explicit start/end pair or for a
// rolling "days" window ending now.
func (h *ReportHandler) GetReport(c *gin.Context) {
	if days := c.Query("days"); days != "" {
		n, err := strconv.Atoi(days)
		if err != nil {
			c.JSON(errInvalidReportPeriod.HTTPStatus, errInvalidReportPeriod.ToHTTPError())
			return
		}
		report, err := h.usecase.GenerateRolling(c.Request.Context(), n)
		if err != nil {
			appErr := mapReportError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromReport(report))
		return
	}

	start, err := request.ParseDate(c.Query("start_date"))
	if err != nil {
		c.JSON(errInvalidReportPeriod.HTTPStatus, errInvalidReportPeriod.ToHTTPError())
		return
	}
	end, err := request.ParseDate(c.Query("end_date"))
	if err != nil {
		c.JSON(errInvalidReportPeriod.HTTPStatus, errInvalidReportPeriod.ToHTTPError())
		return
	}

	report, err := h.usecase.Generate(c.Request.Context(), start, end)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}

func (h *ReportHandler) GetDashboard(c *gin.Context) {
	metrics, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(metrics))
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportPeriod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
