package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification is the consumer-facing trail of user lifecycle events.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventType string    `gorm:"size:100;not null;index"`
	Message   string    `gorm:"size:500;not null"`
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}
