package task

import (
	"go-onboard/internal/middleware"
	"go-onboard/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
) {
	tasks := r.Group("/tasks")
	tasks.Use(middleware.AuthMiddleware())
	{
		tasks.POST("", middleware.RBACAuthorize(rbacService, "task", "create"), h.Create)
		tasks.GET("/options", middleware.RBACAuthorize(rbacService, "task", "read"), h.GetOptions)
		tasks.PUT("/:id", middleware.RBACAuthorize(rbacService, "task", "update"), h.Update)
		tasks.DELETE("/:id", middleware.RBACAuthorize(rbacService, "task", "delete"), h.Delete)
	}

	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("/:id/tasks", middleware.RBACAuthorize(rbacService, "task", "read"), h.ListByDepartment)
		departments.GET("/:id/task-categories", middleware.RBACAuthorize(rbacService, "task", "read"), h.CategoriesByDepartment)
	}

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/:id/supervising-tasks", middleware.RBACAuthorize(rbacService, "task", "read"), h.ListBySupervisor)
	}
}
