package routes

import (
	"filtros_store/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathCheckout = "/checkout"
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addStoreRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
	}

	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/:order_id", paymentHandler.StartCheckout)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:order_id", paymentHandler.GetPaymentByOrderID)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// Mercado Pago redelivers on any non-2xx answer.
		webhooks.POST("/mercadopago", webhookHandler.HandleMercadoPago)
	}
}
