package onboarding

import (
	"time"

	"github.com/google/uuid"
)

// OnboardingTask is the per-user instance of a department task. The
// composite unique index guards the one-row-per-(user,task) invariant.
type OnboardingTask struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_onboarding_user_task"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_onboarding_user_task"`
	Completed bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
