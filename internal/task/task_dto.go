package task

type CreateTaskRequest struct {
	Desc         string  `json:"desc" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	DeptID       string  `json:"deptId" binding:"required,uuid"`
	SupervisorID *string `json:"supervisorId" binding:"omitempty,uuid"`
}

type UpdateTaskRequest struct {
	Desc     string `json:"desc" binding:"required"`
	Category string `json:"category" binding:"required"`
}

type TaskResponse struct {
	ID           string `json:"id"`
	Desc         string `json:"desc"`
	Category     string `json:"category"`
	DeptID       string `json:"deptId"`
	SupervisorID string `json:"supervisorId,omitempty"`
}

// TaskOptionResponse is the select-box shape for supervisor assignment
// forms: label carries the owning department.
type TaskOptionResponse struct {
	ID                string `json:"id"`
	Label             string `json:"label"`
	Value             string `json:"value"`
	DeptID            string `json:"deptId"`
	CurrentSupervisor string `json:"currentSupervisor,omitempty"`
}

type DepartmentTaskResponse struct {
	ID             string `json:"id"`
	Desc           string `json:"desc"`
	Category       string `json:"category"`
	SupervisorID   string `json:"supervisorId,omitempty"`
	SupervisorName string `json:"supervisorName,omitempty"`
}

type SupervisingTaskResponse struct {
	ID       string `json:"id"`
	Desc     string `json:"desc"`
	Category string `json:"category"`
	DeptID   string `json:"deptId"`
	DeptName string `json:"deptName"`
}
