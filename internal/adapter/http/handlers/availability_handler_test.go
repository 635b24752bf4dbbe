package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"locaequip/internal/adapter/http/handlers/mocks"
	"locaequip/internal/domain/entities"
	"locaequip/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityHandler_CheckAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.POST("/v1/availability/check", h.CheckAvailability)

		req := httptest.NewRequest(http.MethodPost, "/v1/availability/check", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.POST("/v1/availability/check", h.CheckAvailability)

		body := `{"equipment_name":"Tenda","start_date":"2025-13-40","end_date":"2025-03-12","requested_quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/v1/availability/check", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.POST("/v1/availability/check", h.CheckAvailability)

		start, _ := time.Parse(entities.DateLayout, "2025-03-10")
		end, _ := time.Parse(entities.DateLayout, "2025-03-12")
		uc.EXPECT().Check(gomock.Any(), "Tenda 10x10", start, end, 2).Return(entities.Availability{
			EquipmentName:     "Tenda 10x10",
			TotalStock:        5,
			OccupiedQuantity:  3,
			AvailableQuantity: 2,
			IsAvailable:       true,
			Conflicts:         []entities.ReservationConflict{},
		}, nil)

		body := `{"equipment_name":"Tenda 10x10","start_date":"2025-03-10","end_date":"2025-03-12","requested_quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "/v1/availability/check", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["available_quantity"] != float64(2) || resp["is_available"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.POST("/v1/availability/check", h.CheckAvailability)

		uc.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Availability{}, usecase.ErrInvalidAvailabilityQuantity)

		body := `{"equipment_name":"Tenda","start_date":"2025-03-10","end_date":"2025-03-12","requested_quantity":-1}`
		req := httptest.NewRequest(http.MethodPost, "/v1/availability/check", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAvailabilityHandler_CheckBatchAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.POST("/v1/availability/check-batch", h.CheckBatchAvailability)

		uc.EXPECT().CheckMultiple(gomock.Any(), []usecase.AvailabilityQuery{
			{EquipmentName: "Tenda 10x10", Quantity: 2},
			{EquipmentName: "Gerador", Quantity: 1},
		}, gomock.Any(), gomock.Any()).Return([]entities.ItemAvailability{
			{EquipmentName: "Tenda 10x10", Quantity: 2, Availability: entities.Availability{IsAvailable: true}},
			{EquipmentName: "Gerador", Quantity: 1, Availability: entities.Availability{IsAvailable: false}},
		}, nil)

		body := `{"start_date":"2025-03-10","end_date":"2025-03-12","items":[{"equipment_name":"Tenda 10x10","quantity":2},{"equipment_name":"Gerador","quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/availability/check-batch", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp) != 2 {
			t.Fatalf("expected 2 lines, got %s", w.Body.String())
		}
	})

	t.Run("missing items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAvailabilityUseCase(ctrl)
		h := NewAvailabilityHandler(uc)

		r := gin.New()
		r.POST("/v1/availability/check-batch", h.CheckBatchAvailability)

		body := `{"start_date":"2025-03-10","end_date":"2025-03-12"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/availability/check-batch", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapAvailabilityError(t *testing.T) {
	if got := mapAvailabilityError(usecase.ErrInvalidAvailabilityName); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAvailabilityError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
