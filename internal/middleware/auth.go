package middleware

import (
	"errors"
	"strconv"
	"strings"

	"github.com/adbridge/adbridge-backend/internal/common"
	"github.com/adbridge/adbridge-backend/internal/domain"
	"github.com/adbridge/adbridge-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// JWTAuth JWT authentication middleware. Resolves the authenticated
// identity once and stores it on the context; handlers read it from there
// instead of re-deriving it per call.
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := claimsFromRequest(c, jwtManager)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Token expired", err)
			} else {
				common.ErrorResponse(c, 401, "Invalid or missing token", err)
			}
			c.Abort()
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalJWTAuth resolves identity when a valid token is present but never
// rejects the request. Used on public endpoints that mask fields for
// anonymous callers.
func OptionalJWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := claimsFromRequest(c, jwtManager); err == nil {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

// RequireRole gates a route group to one account role. Must run after
// JWTAuth.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != role {
			common.ErrorResponse(c, 403, "Insufficient role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func claimsFromRequest(c *gin.Context, jwtManager *jwt.Manager) (*jwt.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, common.ErrUnauthorized
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, common.ErrUnauthorized
	}
	return jwtManager.VerifyToken(parts[1])
}

func setIdentity(c *gin.Context, claims *jwt.Claims) {
	c.Set("userID", claims.UserID)
	c.Set("email", claims.Email)
	c.Set("role", claims.Role)
}

// GetUserID extracts the numeric user ID from context (0 when anonymous)
func GetUserID(c *gin.Context) uint64 {
	v, exists := c.Get("userID")
	if !exists {
		return 0
	}
	str, ok := v.(string)
	if !ok {
		return 0
	}
	id, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// GetRole extracts the account role from context ("" when anonymous)
func GetRole(c *gin.Context) domain.Role {
	v, exists := c.Get("role")
	if !exists {
		return ""
	}
	if str, ok := v.(string); ok {
		return domain.Role(str)
	}
	return ""
}

// IsAuthenticated reports whether the request carries a resolved identity
func IsAuthenticated(c *gin.Context) bool {
	return GetUserID(c) != 0
}
