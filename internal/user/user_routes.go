package user

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

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		// Creation provisions onboarding rows, so double submits are
		// guarded with an idempotency key when redis is available.
		if redisClient != nil {
			users.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "user", "create"),
				h.Create,
			)
		} else {
			users.POST("", middleware.RBACAuthorize(rbacService, "user", "create"), h.Create)
		}
		users.GET("", middleware.RBACAuthorize(rbacService, "user", "read"), h.List)
		users.GET("/:id", middleware.RBACAuthorize(rbacService, "user", "read"), h.GetByID)
		users.GET("/by-email/:email", middleware.RBACAuthorize(rbacService, "user", "read"), h.GetByEmail)
		users.PUT("/:id", middleware.RBACAuthorize(rbacService, "user", "update"), h.Update)
		users.DELETE("/:id", middleware.RBACAuthorize(rbacService, "user", "delete"), h.Delete)
	}
}
