package middleware

import (
	"net/http"

	"orderdesk/database/model"
	"orderdesk/web/session"

	"github.com/gin-gonic/gin"
)

// RequireRole allows only authenticated accounts whose role is listed.
// Authorization failures redirect with a notice instead of raising an
// HTTP error.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool)
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		account := session.GetLoginAccount(c)
		if account == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		if !allowed[account.Role] {
			session.AddFlash(c, "error", "You do not have access to that page.")
			c.Redirect(http.StatusSeeOther, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
