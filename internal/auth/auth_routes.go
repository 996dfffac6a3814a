package auth

import (
	"github.com/saxena100parth/codriva-hrms-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, logger *zap.Logger) {
	group := r.Group("/auth")
	{
		group.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		group.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)
		group.POST("/logout", handler.Logout)
	}

	protected := group.Group("")
	protected.Use(auth, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		protected.GET("/me", middleware.RateLimitByUser(2, 5), handler.Me)
		protected.POST("/change-password", middleware.RateLimitByUser(0.2, 3), handler.ChangePassword)
	}
}
