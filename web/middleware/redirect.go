package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RedirectMiddleware maps retired paths from earlier deployments onto
// their current equivalents.
func RedirectMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// '/upload' predates token-routed submission links.
		redirects := map[string]string{
			"/upload": "/",
			"/orders": "/dashboard",
		}

		path := c.Request.URL.Path
		for from, to := range redirects {
			if path == from || strings.HasPrefix(path, from+"/") {
				c.Redirect(http.StatusMovedPermanently, to)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
