package request

import (
	"strings"

	"filtros_store/internal/domain/entities"
)

// WebhookNotificationRequest is the notification body Mercado Pago posts to
// the webhook endpoint. Older IPN deliveries carry topic/id as query
// parameters instead of a JSON body, so both spellings are accepted.
type WebhookNotificationRequest struct {
	ID         int64  `json:"id"`
	LiveMode   bool   `json:"live_mode"`
	Type       string `json:"type"`
	Action     string `json:"action"`
	APIVersion string `json:"api_version"`
	Data       struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ToEvent merges the body with query-parameter fallbacks into the domain
// event. Body values win when both are present.
func (r WebhookNotificationRequest) ToEvent(queryTopic, queryDataID string) entities.WebhookEvent {
	var event entities.WebhookEvent
	event.Type = strings.TrimSpace(r.Type)
	event.Action = strings.TrimSpace(r.Action)
	event.Data.ID = strings.TrimSpace(r.Data.ID)

	if event.Type == "" {
		event.Type = strings.TrimSpace(queryTopic)
	}
	if event.Data.ID == "" {
		event.Data.ID = strings.TrimSpace(queryDataID)
	}
	return event
}
