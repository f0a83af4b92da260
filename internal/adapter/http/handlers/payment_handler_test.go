package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"filtros_store/internal/adapter/http/handlers/mocks"
	"filtros_store/internal/domain/entities"
	"filtros_store/internal/usecase"
	"filtros_store/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_StartCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/checkout/:order_id", h.StartCheckout)

		uc.EXPECT().StartCheckout(gomock.Any(), "O1").Return(entities.CheckoutRedirect{
			PreferenceID: "pref-1",
			InitPoint:    "https://mp/init",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/O1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["preference_id"] != "pref-1" || body["init_point"] != "https://mp/init" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/checkout/:order_id", h.StartCheckout)

		uc.EXPECT().StartCheckout(gomock.Any(), "O1").Return(entities.CheckoutRedirect{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/O1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/checkout/:order_id", h.StartCheckout)

		uc.EXPECT().StartCheckout(gomock.Any(), "O1").Return(entities.CheckoutRedirect{}, usecase.ErrInvalidOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/O1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/checkout/:order_id", h.StartCheckout)

		gwErr := interfaces.NewGatewayError("preferences.create", errors.New("timeout"))
		uc.EXPECT().StartCheckout(gomock.Any(), "O1").Return(entities.CheckoutRedirect{}, gwErr)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/O1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetPaymentByOrderID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:order_id", h.GetPaymentByOrderID)

		uc.EXPECT().GetLatestByOrderID(gomock.Any(), "O1").Return(entities.PaymentRecord{
			ID:      "77",
			OrderID: "O1",
			Status:  entities.PaymentStatusApproved,
			PaidAt:  time.Now().UTC(),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/O1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["payment_id"] != "77" || body["approved"] != true {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:order_id", h.GetPaymentByOrderID)

		uc.EXPECT().GetLatestByOrderID(gomock.Any(), "O1").Return(entities.PaymentRecord{}, usecase.ErrPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/O1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
