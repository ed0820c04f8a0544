package user

type CreateUserRequest struct {
	Name               string   `json:"name" binding:"required"`
	Email              string   `json:"email" binding:"required,email"`
	Phone              *string  `json:"phone"`
	Role               Role     `json:"role" binding:"required,oneof=ADMIN SUPERVISOR ONBOARDING EMPLOYEE"`
	DeptID             *string  `json:"deptId" binding:"omitempty,uuid"`
	SupervisingTaskIDs []string `json:"supervisingTaskIds" binding:"omitempty,dive,uuid"`
	Password           string   `json:"password" binding:"omitempty,min=8"`
}

type UpdateUserRequest struct {
	Name               string   `json:"name" binding:"required"`
	Email              string   `json:"email" binding:"required,email"`
	Phone              *string  `json:"phone"`
	DeptID             *string  `json:"deptId" binding:"omitempty,uuid"`
	SupervisingTaskIDs []string `json:"supervisingTaskIds" binding:"omitempty,dive,uuid"`
}

type UserDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserResponse struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	Email      string                  `json:"email"`
	Phone      string                  `json:"phone,omitempty"`
	Role       string                  `json:"role"`
	DeptID     string                  `json:"deptId,omitempty"`
	Department *UserDepartmentResponse `json:"department,omitempty"`
}

type ListFilter struct {
	Search string
	Role   string
	Page   int
	Limit  int
}
