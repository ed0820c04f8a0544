package events

import "time"

const UserLifecycleTopic = "onboarding.user.lifecycle.v1"

const (
	UserOnboardedEventType  = "user_onboarded"
	UserReassignedEventType = "user_reassigned"
)

// UserLifecycleEvent is written through the outbox whenever an ONBOARDING
// user gains a department task set (creation or reassignment).
type UserLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	DeptID     string    `json:"dept_id"`
	TaskCount  int       `json:"task_count"`
	OccurredAt time.Time `json:"occurred_at"`
}
