package utils

import (
	"github.com/gin-gonic/gin"
)

const sessionCookieName = "sessionToken"

// SetSessionCookie installs the session token as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, int(SessionExpiry.Seconds()), "/", "", cookieSecure(), true)
}

// GetSessionCookie returns the raw session token, or "" when absent.
func GetSessionCookie(c *gin.Context) string {
	token, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

// ClearSessionCookie discards the session on logout.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", cookieSecure(), true)
}

func cookieSecure() bool {
	// Plain HTTP is fine for local development only.
	return gin.Mode() != gin.DebugMode
}
