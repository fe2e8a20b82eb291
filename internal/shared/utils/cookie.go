package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymkeep/internal/shared/config"
)

const AccessTokenCookie = "access_token"

// SetAccessTokenCookie stores the access token as an HttpOnly cookie.
func SetAccessTokenCookie(c *gin.Context, cookieConfig config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		AccessTokenCookie,
		token,
		maxAge,
		cookiePath(cookieConfig),
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// ClearAccessTokenCookie expires the access token cookie.
func ClearAccessTokenCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		AccessTokenCookie,
		"",
		-1,
		cookiePath(cookieConfig),
		cookieConfig.Domain,
		cookieConfig.Secure,
		true,
	)
}

// GetTokenFromCookie returns the named cookie's value, or "" when absent.
func GetTokenFromCookie(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}

func cookiePath(cookieConfig config.CookieConfig) string {
	if cookieConfig.Path == "" {
		return "/"
	}
	return cookieConfig.Path
}

func parseSameSite(value string) http.SameSite {
	switch value {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
