// Package controller provides the HTTP handlers of the order-intake
// panel: public submission, sessions, the staff dashboard, and admin
// account management.
package controller

import (
	"net/http"

	"orderdesk/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the authentication check shared by the
// session-gated controllers.
type BaseController struct{}

// checkLogin is a middleware that sends unauthenticated requests to the
// login page.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
	} else {
		c.Next()
	}
}
