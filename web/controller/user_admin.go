package controller

import (
	"errors"
	"net/http"
	"strconv"

	"orderdesk/database/model"
	"orderdesk/logger"
	"orderdesk/web/middleware"
	"orderdesk/web/service"
	"orderdesk/web/session"

	"github.com/gin-gonic/gin"
)

// UserAdminController is the admin-only account management panel.
type UserAdminController struct {
	accountService service.AccountService
}

// NewUserAdminController creates a new UserAdminController and initializes its routes.
func NewUserAdminController(g *gin.RouterGroup) *UserAdminController {
	a := &UserAdminController{}
	a.initRouter(g)
	return a
}

func (a *UserAdminController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/admin")
	g.Use(middleware.RequireRole(model.RoleAdmin))

	g.GET("/users", a.list)
	g.POST("/users", a.create)
	g.POST("/users/delete", a.delete)
}

func (a *UserAdminController) list(c *gin.Context) {
	accounts, err := a.accountService.List()
	if err != nil {
		logger.Error("account listing failed:", err)
		session.AddFlash(c, "error", "Accounts could not be loaded.")
	}
	html(c, "users.html", "Accounts", gin.H{
		"accounts": accounts,
		"roles":    []model.Role{model.RoleAdmin, model.RoleEmployee},
	})
}

type createAccountForm struct {
	Username  string `form:"username"`
	Password  string `form:"password"`
	Role      string `form:"role"`
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Email     string `form:"email"`
	Phone     string `form:"phone"`
	WorkType  string `form:"workType"`
	Gender    string `form:"gender"`
	Age       int    `form:"age"`
}

// create adds an account with an explicit role and a fresh request token.
func (a *UserAdminController) create(c *gin.Context) {
	var form createAccountForm
	if err := c.ShouldBind(&form); err != nil {
		session.AddFlash(c, "error", "Invalid form data.")
		c.Redirect(http.StatusSeeOther, "/admin/users")
		return
	}

	account := &model.Account{
		Username:  form.Username,
		Role:      model.Role(form.Role),
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		WorkType:  form.WorkType,
		Gender:    form.Gender,
		Age:       form.Age,
	}
	if _, err := a.accountService.Create(account, form.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateUsername),
			errors.Is(err, service.ErrDuplicateEmail),
			errors.Is(err, service.ErrMissingField):
			session.AddFlash(c, "error", err.Error())
		default:
			logger.Error("account create failed:", err)
			session.AddFlash(c, "error", "The account could not be created.")
		}
		c.Redirect(http.StatusSeeOther, "/admin/users")
		return
	}

	logger.Infof("admin %s created account %s", session.GetLoginAccount(c).Username, form.Username)
	session.AddFlash(c, "success", "Account created.")
	c.Redirect(http.StatusSeeOther, "/admin/users")
}

// delete removes an account by id, refusing self-deletion.
func (a *UserAdminController) delete(c *gin.Context) {
	acting := session.GetLoginAccount(c)

	id, err := strconv.Atoi(c.PostForm("id"))
	if err != nil {
		session.AddFlash(c, "error", "Unknown account.")
		c.Redirect(http.StatusSeeOther, "/admin/users")
		return
	}

	if err := a.accountService.Delete(id, acting.Id); err != nil {
		if errors.Is(err, service.ErrSelfDelete) {
			session.AddFlash(c, "error", "You cannot delete your own account.")
		} else {
			logger.Error("account delete failed:", err)
			session.AddFlash(c, "error", "The account could not be deleted.")
		}
		c.Redirect(http.StatusSeeOther, "/admin/users")
		return
	}

	logger.Infof("admin %s deleted account %d", acting.Username, id)
	session.AddFlash(c, "success", "Account deleted.")
	c.Redirect(http.StatusSeeOther, "/admin/users")
}
