package controller

import (
	"errors"
	"net/http"
	"strconv"

	"orderdesk/database"
	"orderdesk/database/model"
	"orderdesk/logger"
	"orderdesk/web/middleware"
	"orderdesk/web/service"
	"orderdesk/web/session"

	"github.com/gin-gonic/gin"
)

// PanelController serves the staff dashboard: the role-scoped order list
// and the status-transition action.
type PanelController struct {
	BaseController

	accountService service.AccountService
	orderService   service.OrderService
}

// NewPanelController creates a new PanelController and initializes its routes.
func NewPanelController(g *gin.RouterGroup) *PanelController {
	a := &PanelController{}
	a.initRouter(g)
	return a
}

func (a *PanelController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/dashboard")
	g.Use(a.checkLogin)
	g.Use(middleware.RequireRole(model.RoleAdmin, model.RoleEmployee))

	g.GET("/", a.dashboard)
	g.POST("/status", a.updateStatus)
}

// dashboard lists orders in status rank order. Admins see everything;
// employees see only orders routed to their own token.
func (a *PanelController) dashboard(c *gin.Context) {
	account := session.GetLoginAccount(c)

	var (
		orders []model.Order
		err    error
	)
	if account.Role == model.RoleAdmin {
		orders, err = a.orderService.ListAll()
	} else {
		orders, err = a.orderService.ListByAgent(account.Username)
	}
	if err != nil {
		logger.Error("order listing failed:", err)
		orders = nil
		session.AddFlash(c, "error", "Orders could not be loaded.")
	}

	html(c, "dashboard.html", "Dashboard", gin.H{
		"orders":         orders,
		"statuses":       model.Statuses,
		"submissionLink": a.accountService.SubmissionLink(account),
		"isAdmin":        account.Role == model.RoleAdmin,
	})
}

// updateStatus moves a single order to one of the offered statuses and
// returns to the (possibly now stale) listing.
func (a *PanelController) updateStatus(c *gin.Context) {
	account := session.GetLoginAccount(c)

	id, err := strconv.Atoi(c.PostForm("id"))
	if err != nil {
		session.AddFlash(c, "error", "Unknown order.")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	status := model.OrderStatus(c.PostForm("status"))

	err = a.orderService.UpdateStatus(id, status, account)
	switch {
	case err == nil:
		session.AddFlash(c, "success", "Order updated.")
	case errors.Is(err, service.ErrInvalidStatus):
		session.AddFlash(c, "error", "That status is not available.")
	case errors.Is(err, service.ErrNotOwnOrder):
		session.AddFlash(c, "error", "That order is not yours to update.")
	case database.IsNotFound(err):
		session.AddFlash(c, "error", "Unknown order.")
	default:
		logger.Error("status update failed:", err)
		session.AddFlash(c, "error", "The order could not be updated.")
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
