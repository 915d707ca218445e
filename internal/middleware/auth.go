package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AllTenants in the tenants claim grants access to every tenant's books.
const AllTenants = "*"

// Claims are the JWT claims accepted by the API. Tenants lists the tenants whose
// books the subject may read and write.
type Claims struct {
	Tenants []string `json:"tenants,omitempty"`
	jwt.RegisteredClaims
}

// AllowsTenant reports whether the claims grant access to tenantID.
func (c *Claims) AllowsTenant(tenantID string) bool {
	return allowsTenant(c.Tenants, tenantID)
}

func allowsTenant(tenants []string, tenantID string) bool {
	for _, t := range tenants {
		if t == AllTenants || (t != "" && t == tenantID) {
			return true
		}
	}
	return false
}

// AuthMiddleware creates a Gin middleware handler that validates HMAC-signed JWT
// bearer tokens. The subject claim becomes the acting user of every posting,
// transition and reversal made by the request.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid", "header", authHeader)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		tokenString := parts[1]

		// Parse and validate the token
		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			// Check the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			logger.Warn("Invalid token", "error", err)
			status := http.StatusUnauthorized
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}

		if claims, ok := token.Claims.(*Claims); ok && token.Valid {
			userID := claims.Subject
			if userID == "" {
				logger.Error("User ID (subject) missing from valid token")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
				return
			}

			enrichedLogger := logger.With(slog.String("user_id", userID))
			ctx := WithTenantIDs(WithUserID(c.Request.Context(), userID), claims.Tenants)
			ctx = WithLogger(ctx, enrichedLogger)
			c.Request = c.Request.WithContext(ctx)

			c.Next()
		} else {
			logger.Warn("Invalid token claims or token is not valid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		}
	}
}

// TenantAccess rejects requests whose tenant path parameter is not granted by the
// caller's token. It must run after AuthMiddleware.
func TenantAccess(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		tenantID := c.Param(param)
		if tenantID == "" {
			c.Next()
			return
		}
		if !allowsTenant(GetTenantIDsFromContext(c.Request.Context()), tenantID) {
			userID, _ := GetUserIDFromContext(c)
			logger.Warn("Tenant access denied", slog.String("user_id", userID), slog.String("tenant_id", tenantID))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access to this tenant is not allowed"})
			return
		}
		c.Next()
	}
}
