package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SettingsScope is the scope a token needs to change stored credentials
const SettingsScope = "settings:write"

// ContextKeySubject holds the verified token subject
const ContextKeySubject = "subject"

// SettingsClaims are the claims of a settings token
type SettingsClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies HS256 tokens issued to the settings UI
type AuthMiddleware struct {
	secret []byte
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(secret string) (*AuthMiddleware, error) {
	if secret == "" {
		return nil, fmt.Errorf("settings JWT secret is required")
	}
	return &AuthMiddleware{secret: []byte(secret)}, nil
}

// RequireSettingsScope is a Gin middleware that requires a valid settings token
func (am *AuthMiddleware) RequireSettingsScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Authorization header must start with 'Bearer '",
			})
			return
		}

		claims, err := am.verifyToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Invalid token",
				"details": err.Error(),
			})
			return
		}

		if claims.Scope != SettingsScope {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "Token lacks the " + SettingsScope + " scope",
			})
			return
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Next()
	}
}

// IssueToken signs a settings token; used by the CLI and tests
func (am *AuthMiddleware) IssueToken(claims SettingsClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(am.secret)
}

func (am *AuthMiddleware) verifyToken(token string) (*SettingsClaims, error) {
	claims := &SettingsClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return am.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	return claims, nil
}
