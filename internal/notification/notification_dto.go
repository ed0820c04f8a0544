package notification

import "time"

type CreateNotificationRequest struct {
	EventType string `json:"eventType" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	EventType string    `json:"eventType"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
