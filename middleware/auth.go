package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"resell-dashboard/pkg/jwt"
	"resell-dashboard/pkg/response"
	"resell-dashboard/pkg/session"
)

// RequireLogin sends anonymous browsers to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.IsAuthenticated(c) {
			c.Next()
			return
		}
		next := url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusSeeOther, "/login?next="+next)
		c.Abort()
	}
}

// RequireToken checks the Bearer token on API requests.
func RequireToken(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.Abort(c, response.AUTH_ERROR, "missing bearer token")
			return
		}

		claims, err := manager.ParseToken(token)
		if err != nil {
			response.Abort(c, response.AUTH_ERROR, err.Error())
			return
		}
		c.Set("claims", claims)
		c.Next()
	}
}
