package department

import (
	"go-onboard/internal/middleware"
	"go-onboard/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		if redisClient != nil {
			departments.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "department", "create"),
				h.Create,
			)
		} else {
			departments.POST("", middleware.RBACAuthorize(rbacService, "department", "create"), h.Create)
		}
		departments.GET("", middleware.RBACAuthorize(rbacService, "department", "read"), h.List)
		departments.GET("/options", middleware.RBACAuthorize(rbacService, "department", "read"), h.GetOptions)
		departments.GET("/:id", middleware.RBACAuthorize(rbacService, "department", "read"), h.GetByID)
		departments.PUT("/:id", middleware.RBACAuthorize(rbacService, "department", "update"), h.Update)
		departments.DELETE("/:id", middleware.RBACAuthorize(rbacService, "department", "delete"), h.Delete)
	}
}
