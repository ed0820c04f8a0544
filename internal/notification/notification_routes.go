package notification

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
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", middleware.RBACAuthorize(rbacService, "notification", "read"), h.List)
		notifications.GET("/unread-count", middleware.RBACAuthorize(rbacService, "notification", "read"), h.UnreadCount)
		notifications.PUT("/:id/read", middleware.RBACAuthorize(rbacService, "notification", "update"), h.MarkRead)
		notifications.PUT("/read-all", middleware.RBACAuthorize(rbacService, "notification", "update"), h.MarkAllRead)
	}
}
