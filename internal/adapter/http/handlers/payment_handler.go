package handlers

import (
	"errors"
	"log"
	"net/http"

	response "filtros_store/internal/adapter/http/dto/response"
	"filtros_store/internal/usecase"
	"filtros_store/internal/usecase/interfaces"
	"filtros_store/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles checkout initiation and payment-status queries.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// StartCheckout creates the gateway preference for an order and returns the
// redirect data for the hosted checkout.
func (h *PaymentHandler) StartCheckout(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[checkout][handler] start order_id=%s", orderID)

	redirect, err := h.usecase.StartCheckout(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[checkout][handler] failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] success order_id=%s preference_id=%s", orderID, redirect.PreferenceID)

	c.JSON(http.StatusCreated, response.FromCheckoutRedirect(redirect))
}

// GetPaymentByOrderID returns the latest reconciled payment for an order.
func (h *PaymentHandler) GetPaymentByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")

	record, err := h.usecase.GetLatestByOrderID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentRecord(record))
}

func mapPaymentError(err error) *pkg.AppError {
	var gwErr *interfaces.GatewayError
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrder), errors.Is(err, usecase.ErrInvalidNotification):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.As(err, &gwErr):
		if gwErr.NotFound {
			return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found at provider", http.StatusNotFound)
		}
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
