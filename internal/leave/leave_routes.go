package leave

import (
	"github.com/saxena100parth/codriva-hrms-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
	rdb redis.Cmdable,
	logger *zap.Logger,
) {
	applyChain := []gin.HandlerFunc{
		middleware.RateLimitByUser(1, 3),
		middleware.RBACAuthorize(rbacService, "leave", "create"),
	}
	if rdb != nil {
		applyChain = append(applyChain, middleware.Idempotency(rdb, logger))
	}
	applyChain = append(applyChain, handler.Apply)

	leaves := r.Group("/leaves")
	leaves.Use(auth, middleware.ExtractUserID())
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.POST("", applyChain...)
		leaves.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "leave", "read"),
			handler.GetAll,
		)
		leaves.GET("/export",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "leave", "export"),
			handler.Export,
		)
		leaves.GET("/balance",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "leave_balance", "read"),
			handler.MyBalance,
		)
		leaves.GET("/balance/:user_id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "leave_balance", "read_all"),
			handler.UserBalance,
		)
		leaves.PUT("/balance/:user_id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "leave_balance", "update"),
			handler.SetBalance,
		)
		leaves.GET("/reconcile/:user_id",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "leave_balance", "reconcile"),
			handler.Reconcile,
		)
		leaves.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "leave", "read"),
			handler.GetByID,
		)
		leaves.PATCH("/:id/decision",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "leave", "approve"),
			handler.Decide,
		)
		leaves.POST("/:id/cancel",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "leave", "cancel"),
			handler.Cancel,
		)
	}
}
