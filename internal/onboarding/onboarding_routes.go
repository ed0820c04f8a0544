package onboarding

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
	tasks := r.Group("/onboarding-tasks")
	tasks.Use(middleware.AuthMiddleware())
	{
		tasks.PUT("/:id", middleware.RBACAuthorize(rbacService, "onboarding_task", "update"), h.SetCompleted)
	}

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/:id/onboarding-tasks", middleware.RBACAuthorize(rbacService, "onboarding_task", "read"), h.ListByUser)
		users.GET("/:id/task-categories", middleware.RBACAuthorize(rbacService, "onboarding_task", "read"), h.CategoriesByUser)
	}
}
