package department

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DepartmentOptionResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ListFilter struct {
	Search string
	Page   int
	Limit  int
}
