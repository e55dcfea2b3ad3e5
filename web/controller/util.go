package controller

import (
	"net"
	"net/http"
	"strings"

	"orderdesk/config"
	"orderdesk/web/session"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or
// remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return ips[0]
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// html renders a template with the shared context: title, flashes,
// version and the logged-in account, if any.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	data["cur_ver"] = config.GetVersion()
	data["flashes"] = session.TakeFlashes(c)
	if account := session.GetLoginAccount(c); account != nil {
		data["account"] = account
	}
	c.HTML(http.StatusOK, name, data)
}
