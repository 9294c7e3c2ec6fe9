package middleware

import (
	"net/http"

	"portfolio-cms/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthCookieName is the session cookie set by the login endpoint.
const AuthCookieName = "auth"

// LoginPath is where unauthenticated admin requests are sent.
const LoginPath = "/login"

// RouteGuard protects everything under the admin prefix. A missing,
// malformed or expired session cookie redirects to the login page. On
// success the request passes through unchanged; the guard injects
// nothing into the context, handlers that need the identity re-read
// the cookie themselves.
func RouteGuard(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AuthCookieName)
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		if _, err := jwtService.ValidateToken(token); err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}
