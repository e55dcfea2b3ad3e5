package controller

import (
	"net/http"
	"strconv"

	"orderdesk/database/model"
	"orderdesk/logger"
	"orderdesk/web/service"
	"orderdesk/web/session"

	"github.com/gin-gonic/gin"
)

// SubmissionForm represents the public order form, bound once at the
// boundary. Product type, customer name, phone and location are
// required; details and the attachment are optional.
type SubmissionForm struct {
	ProductType  string `form:"productType"`
	CustomerName string `form:"customerName"`
	PhoneNumber  string `form:"phoneNumber"`
	Location     string `form:"location"`
	Details      string `form:"details"`
}

func (f *SubmissionForm) fieldErrors() map[string]string {
	errs := make(map[string]string)
	if f.ProductType == "" {
		errs["productType"] = "Product type is required."
	}
	if f.CustomerName == "" {
		errs["customerName"] = "Your name is required."
	}
	if f.PhoneNumber == "" {
		errs["phoneNumber"] = "Phone number is required."
	}
	if f.Location == "" {
		errs["location"] = "Location is required."
	}
	return errs
}

// RequestController serves the token-routed public submission flow and
// attachment retrieval.
type RequestController struct {
	accountService service.AccountService
	orderService   service.OrderService
	uploadService  *service.UploadService
}

// NewRequestController creates a new RequestController and initializes its routes.
func NewRequestController(g *gin.RouterGroup, uploads *service.UploadService) *RequestController {
	a := &RequestController{uploadService: uploads}
	a.initRouter(g)
	return a
}

func (a *RequestController) initRouter(g *gin.RouterGroup) {
	g.GET("/request/:token", a.form)
	g.POST("/request/:token", a.submit)
	g.GET("/success", a.success)
	g.GET("/uploads/:name", a.attachment)
}

// resolveAgent maps the path token to its owning account. An unknown
// token sends the visitor to the landing page with a notice, never a 404.
func (a *RequestController) resolveAgent(c *gin.Context) *model.Account {
	token := c.Param("token")
	agent, err := a.accountService.GetByToken(token)
	if err != nil {
		session.AddFlash(c, "error", "This submission link is not valid.")
		c.Redirect(http.StatusSeeOther, "/")
		return nil
	}
	return agent
}

func (a *RequestController) form(c *gin.Context) {
	agent := a.resolveAgent(c)
	if agent == nil {
		return
	}
	html(c, "request.html", "Place an order", gin.H{
		"token": agent.RequestToken,
	})
}

// submit validates the form and writes exactly one order, or nothing.
func (a *RequestController) submit(c *gin.Context) {
	agent := a.resolveAgent(c)
	if agent == nil {
		return
	}

	var form SubmissionForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "request.html", "Place an order", gin.H{
			"token":  agent.RequestToken,
			"errors": map[string]string{"form": "Invalid form data."},
			"form":   &form,
		})
		return
	}

	if errs := form.fieldErrors(); len(errs) > 0 {
		html(c, "request.html", "Place an order", gin.H{
			"token":  agent.RequestToken,
			"errors": errs,
			"form":   &form,
		})
		return
	}

	fileName := ""
	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		stored, err := a.uploadService.Save(fileHeader)
		if err != nil {
			logger.Error("attachment save failed:", err)
			html(c, "request.html", "Place an order", gin.H{
				"token":  agent.RequestToken,
				"errors": map[string]string{"file": "The attachment could not be stored."},
				"form":   &form,
			})
			return
		}
		fileName = stored
	}

	order := &model.Order{
		ProductType:   form.ProductType,
		CustomerName:  form.CustomerName,
		PhoneNumber:   form.PhoneNumber,
		Location:      form.Location,
		Details:       form.Details,
		FileName:      fileName,
		AgentUsername: agent.Username,
	}
	if err := a.orderService.Create(order); err != nil {
		logger.Error("order insert failed:", err)
		html(c, "request.html", "Place an order", gin.H{
			"token":  agent.RequestToken,
			"errors": map[string]string{"form": "Something went wrong, please try again later."},
			"form":   &form,
		})
		return
	}

	logger.Infof("order %d created for agent %s", order.Id, agent.Username)
	c.Redirect(http.StatusSeeOther, "/success?order="+strconv.Itoa(order.Id))
}

func (a *RequestController) success(c *gin.Context) {
	html(c, "success.html", "Order received", gin.H{
		"orderId": c.Query("order"),
	})
}

// attachment serves a stored upload by its sanitized name.
func (a *RequestController) attachment(c *gin.Context) {
	path, err := a.uploadService.Path(c.Param("name"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.File(path)
}
