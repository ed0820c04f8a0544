package preferences

import (
	"go-onboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	prefs := r.Group("/preferences")
	prefs.Use(middleware.AuthMiddleware())
	{
		prefs.GET("/table", h.Get)
		prefs.PUT("/table", h.Put)
	}
}
