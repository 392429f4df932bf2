package middlewares

import (
	"EAsha/utils"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// contextKey is a private key type for values stored on the request context.
type contextKey string

const (
	usernameKey contextKey = "username"
	roleKey     contextKey = "userRole"
	claimsKey   contextKey = "sessionClaims"
)

// SessionAuth validates the session cookie for the given role and puts the
// claims on the request context. Requests without a valid session are
// redirected to the role's login page, mirroring the browser workflow.
func SessionAuth(requiredRole, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionCookie(c)
		if token == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(token, requiredRole)
		if err != nil {
			utils.ClearSessionCookie(c)
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), usernameKey, claims.Username)
		ctx = context.WithValue(ctx, roleKey, claims.Role)
		ctx = context.WithValue(ctx, claimsKey, claims)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ExtractUsernameFromContext retrieves the logged-in identity.
func ExtractUsernameFromContext(ctx context.Context) (string, error) {
	username, ok := ctx.Value(usernameKey).(string)
	if !ok {
		return "", errors.New("username not found in context")
	}
	return username, nil
}

// ExtractClaimsFromContext retrieves the full session claims, including the
// in-progress patient draft.
func ExtractClaimsFromContext(ctx context.Context) (*utils.SessionClaims, error) {
	claims, ok := ctx.Value(claimsKey).(*utils.SessionClaims)
	if !ok {
		return nil, errors.New("session claims not found in context")
	}
	return claims, nil
}
