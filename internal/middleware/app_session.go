package middleware

import (
	"net/http"
	"time"

	appjwt "github.com/codementor/codementor-api/pkg/jwt"
	"github.com/codementor/codementor-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionContextKey = "app_session"

// SessionCookieConfig controls how the session cookie is issued
type SessionCookieConfig struct {
	Name   string
	Domain string
	Secure bool
	TTL    time.Duration
}

// AppSessionMiddleware validates the session cookie and attaches the
// claims to the request context. Requests without a valid session are
// rejected.
func AppSessionMiddleware(tm *appjwt.TokenManager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		claims, err := tm.ValidateToken(token)
		if err != nil {
			logger.Debug("Session token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		c.Set(sessionContextKey, claims)
		c.Next()
	}
}

// GetAppSession returns the validated session claims, if present
func GetAppSession(c *gin.Context) (*appjwt.AppClaims, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*appjwt.AppClaims)
	return claims, ok
}

// RequireRole rejects sessions whose role claim does not match
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAppSession(c)
		if !ok || claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}

// SetSessionCookie issues the session cookie on a response
func SetSessionCookie(c *gin.Context, cfg SessionCookieConfig, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.Name, token, int(cfg.TTL.Seconds()), "/", cfg.Domain, cfg.Secure, true)
}

// ClearSessionCookie removes the session cookie
func ClearSessionCookie(c *gin.Context, cfg SessionCookieConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.Name, "", -1, "/", cfg.Domain, cfg.Secure, true)
}
