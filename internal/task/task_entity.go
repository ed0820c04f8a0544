package task

import (
	"time"

	"github.com/google/uuid"
)

// Task is a department-owned onboarding catalog entry. Category is a
// free-form department-defined label ("Pre-hire", "First day", ...).
type Task struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Desc         string     `gorm:"column:description;size:255;not null"`
	Category     string     `gorm:"size:100;not null;default:'General'"`
	DeptID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	SupervisorID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
