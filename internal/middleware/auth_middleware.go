package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/apperror"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/response"
	"github.com/saxena100parth/codriva-hrms-sub002/internal/shared/token"

	"github.com/gin-gonic/gin"
)

var (
	errTokenMissing   = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	errTokenInvalid   = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	errTokenExpired   = apperror.New(apperror.CodeExpired, "Token has expired", http.StatusUnauthorized)
	errTokenWrongType = apperror.New(apperror.CodeUnauthorized, "Token type not accepted here", http.StatusUnauthorized)
)

// AuthMiddleware memvalidasi JWT dari header Bearer atau cookie access_token.
// Tanpa allowedTypes hanya access token yang diterima.
func AuthMiddleware(issuer *token.Issuer, allowedTypes ...string) gin.HandlerFunc {
	if len(allowedTypes) == 0 {
		allowedTypes = []string{token.TypeAccess}
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, errTokenMissing)
			return
		}

		claims, err := issuer.Parse(tokenString)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				abortWith(c, errTokenExpired)
				return
			}
			abortWith(c, errTokenInvalid)
			return
		}

		if !slices.Contains(allowedTypes, claims.Type) {
			abortWith(c, errTokenWrongType)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("status", claims.Status)
		c.Set("onboarding_status", claims.OnboardingStatus)
		c.Set("token_type", claims.Type)

		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, err.Details)
	c.Abort()
}
