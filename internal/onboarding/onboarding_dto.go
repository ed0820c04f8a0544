package onboarding

type SetCompletedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type OnboardingTaskResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	TaskID    string `json:"taskId"`
	Completed bool   `json:"completed"`
}

// OnboardingTaskItemResponse is the per-user listing shape, task details
// joined in.
type OnboardingTaskItemResponse struct {
	ID        string `json:"id"`
	TaskID    string `json:"taskId"`
	Desc      string `json:"desc"`
	Category  string `json:"category"`
	Completed bool   `json:"completed"`
}
