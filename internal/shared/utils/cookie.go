package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skylink/internal/shared/config"
)

// SetSessionCookie binds the browser to a session holder key.
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, sessionID string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		cookieConfig.Name,
		sessionID,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		cookieConfig.Name,
		"",
		-1,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// GetSessionCookie returns the session id or "" when the cookie is absent.
func GetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) string {
	id, err := c.Cookie(cookieConfig.Name)
	if err != nil {
		return ""
	}
	return id
}

// parseSameSite converts string to http.SameSite
func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
