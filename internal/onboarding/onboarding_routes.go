package onboarding

import (
	"github.com/saxena100parth/codriva-hrms-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes memasang tiga kelompok route: publik (OTP), sesi onboarding
// (token onboarding atau access), dan HR (access + RBAC).
// otpLimiter nil berarti Redis tidak tersedia; dipakai limiter in-memory per IP.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
	sessionAuth gin.HandlerFunc,
	otpLimiter gin.HandlerFunc,
	logger *zap.Logger,
) {
	if otpLimiter == nil {
		otpLimiter = middleware.RateLimitByIP(0.05, 5)
	}

	public := r.Group("/onboarding")
	{
		public.POST("/request-otp", otpLimiter, handler.RequestOTP)
		public.POST("/resend-otp", otpLimiter, handler.ResendOTP)
		public.POST("/verify-otp", otpLimiter, handler.VerifyOTP)
	}

	session := r.Group("/onboarding/me")
	session.Use(sessionAuth, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		session.GET("", middleware.RateLimitByUser(2, 5), handler.Status)
		session.PUT("", middleware.RateLimitByUser(0.5, 3), handler.Submit)
		session.POST("/complete", middleware.RateLimitByUser(0.5, 3), handler.Complete)
	}

	hr := r.Group("/onboarding")
	hr.Use(auth, middleware.ExtractUserID(), middleware.ContextLogger(logger))
	{
		hr.POST("/invite",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "onboarding", "invite"),
			handler.Invite,
		)
		hr.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "onboarding", "read"),
			handler.List,
		)
		hr.POST("/:id/resend-invite",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "onboarding", "invite"),
			handler.ResendInvitation,
		)
		hr.POST("/:id/review",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "onboarding", "review"),
			handler.Review,
		)
	}
}
