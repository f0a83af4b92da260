package handlers

import (
	"log"
	"net/http"

	request "filtros_store/internal/adapter/http/dto/request"
	response "filtros_store/internal/adapter/http/dto/response"
	"filtros_store/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives asynchronous payment notifications from Mercado
// Pago. Any non-2xx answer makes the gateway redeliver, which is the only
// retry mechanism this service relies on.

type WebhookHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewWebhookHandler(uc usecase.IPaymentUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleMercadoPago processes one notification delivery.
func (h *WebhookHandler) HandleMercadoPago(c *gin.Context) {
	var payload request.WebhookNotificationRequest
	// The body may be empty on legacy IPN deliveries; the query parameters
	// carry the event in that case.
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[webhook][handler] body bind skipped err=%v", err)
	}

	event := payload.ToEvent(
		firstNonEmptyQuery(c, "type", "topic"),
		firstNonEmptyQuery(c, "data.id", "id"),
	)
	log.Printf("[webhook][handler] delivery received type=%s data_id=%s", event.Type, event.Data.ID)

	result, err := h.usecase.HandleNotification(c.Request.Context(), event)
	if err != nil {
		log.Printf("[webhook][handler] processing failed type=%s data_id=%s err=%v", event.Type, event.Data.ID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resp := response.WebhookResponse{Processed: result.Processed}
	if result.Record != nil {
		r := response.FromPaymentRecord(*result.Record)
		resp.Record = &r
	}
	log.Printf("[webhook][handler] delivery done processed=%t", result.Processed)

	c.JSON(http.StatusOK, resp)
}

func firstNonEmptyQuery(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			return v
		}
	}
	return ""
}
