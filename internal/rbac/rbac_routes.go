package rbac

import (
	"github.com/saxena100parth/codriva-hrms-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service, auth gin.HandlerFunc, logger *zap.Logger) {
	group := r.Group("/rbac")
	group.Use(auth, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		group.GET("/permissions",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(service, "rbac", "read"),
			handler.MyPermissions,
		)
		group.POST("/check",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(service, "rbac", "read"),
			handler.Check,
		)
		group.POST("/enforce",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(service, "rbac", "enforce"),
			handler.Enforce,
		)
	}
}
