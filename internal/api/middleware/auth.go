// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"job-portal-api/internal/models"
	"job-portal-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userID" // Key to store user ID in context
	roleCtx             = "role"   // Key to store the user's role in context
)

// Claims are the access token claims issued by the auth service.
// The subject carries the numeric user id.
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuthMiddleware creates a Gin middleware for JWT authentication.
func JWTAuthMiddleware(jwtSecret string, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("auth")
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			abortUnauthorized(c, "Invalid Authorization header format")
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			log.Debug("token rejected", zap.Error(err))
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortUnauthorized(c, "Token has expired")
			} else {
				abortUnauthorized(c, "Invalid token")
			}
			return
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil || userID <= 0 {
			log.Debug("invalid token subject", zap.String("subject", claims.Subject))
			abortUnauthorized(c, "Invalid user identifier in token")
			return
		}
		if !claims.Role.Valid() {
			log.Debug("invalid token role", zap.Int("role", int(claims.Role)))
			abortUnauthorized(c, "Invalid role in token")
			return
		}

		c.Set(userCtx, userID)
		c.Set(roleCtx, claims.Role)
		c.Next()
	}
}

// RequireRoles rejects authenticated callers whose role is not listed.
// It must run after JWTAuthMiddleware.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := GetCallerFromContext(c)
		if err != nil {
			abortUnauthorized(c, "Unauthorized")
			return
		}
		for _, r := range roles {
			if caller.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "You are not allowed to perform this action"})
	}
}

// GetCallerFromContext returns the authenticated user set by JWTAuthMiddleware.
func GetCallerFromContext(c *gin.Context) (dto.Caller, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return dto.Caller{}, errors.New("user ID not found in context")
	}
	userID, ok := userIDAny.(int64)
	if !ok {
		return dto.Caller{}, errors.New("user ID in context is of invalid type")
	}

	roleAny, exists := c.Get(roleCtx)
	if !exists {
		return dto.Caller{}, errors.New("role not found in context")
	}
	role, ok := roleAny.(models.Role)
	if !ok {
		return dto.Caller{}, errors.New("role in context is of invalid type")
	}

	return dto.Caller{UserID: userID, Role: role}, nil
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: msg})
}
