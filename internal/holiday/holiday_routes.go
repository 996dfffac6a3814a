package holiday

import (
	"github.com/saxena100parth/codriva-hrms-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
	logger *zap.Logger,
) {
	holidays := r.Group("/holidays")
	holidays.Use(auth, middleware.ExtractUserID())
	holidays.Use(middleware.ContextLogger(logger))
	{
		holidays.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "holiday", "read"),
			handler.List,
		)
		holidays.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "holiday", "create"),
			handler.Create,
		)
		holidays.DELETE("/:id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "holiday", "delete"),
			handler.Delete,
		)
		holidays.POST("/bulk-copy",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "holiday", "create"),
			handler.BulkCopy,
		)
	}
}
