package controller

import (
	"errors"
	"net/http"

	"orderdesk/config"
	"orderdesk/logger"
	"orderdesk/web/service"
	"orderdesk/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Remember bool   `form:"remember"`
}

// IndexController handles the landing page, sessions and registration.
type IndexController struct {
	BaseController

	accountService service.AccountService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
}

// index is the public landing page. Visitors following a broken
// submission link end up here with a notice already queued.
func (a *IndexController) index(c *gin.Context) {
	html(c, "landing.html", "Order Desk", nil)
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	html(c, "login.html", "Sign in", nil)
}

// login authenticates and establishes the session. Unknown usernames and
// wrong passwords produce the same generic notice.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil || form.Username == "" || form.Password == "" {
		session.AddFlash(c, "error", "Username and password are required.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	account := a.accountService.Authenticate(form.Username, form.Password)
	if account == nil {
		logger.Warningf("failed login for %q from %s", form.Username, getRemoteIp(c))
		session.AddFlash(c, "error", "Invalid username or password.")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	maxAge := config.GetSessionMaxAgeMinutes() * 60
	if form.Remember {
		maxAge = 30 * 24 * 60 * 60
	}
	if err := session.SetMaxAge(c, maxAge); err != nil {
		logger.Warning("unable to set session max age:", err)
	}
	if err := session.SetLoginAccount(c, account); err != nil {
		logger.Warning("unable to save session:", err)
	}

	logger.Infof("%s logged in from %s", account.Username, getRemoteIp(c))
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (a *IndexController) logout(c *gin.Context) {
	if account := session.GetLoginAccount(c); account != nil {
		logger.Infof("%s logged out", account.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func (a *IndexController) registerPage(c *gin.Context) {
	mode := config.GetRegistrationMode()
	if mode == config.RegistrationBootstrap {
		if count, err := a.accountService.Count(); err == nil && count > 0 {
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
	}
	html(c, "register.html", "Register", gin.H{
		"open":      mode == config.RegistrationOpen,
		"challenge": service.ChallengeQuestion,
	})
}

// register creates an account under the configured policy and sends the
// visitor to the login page.
func (a *IndexController) register(c *gin.Context) {
	var form service.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		session.AddFlash(c, "error", "Invalid form data.")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	mode := config.GetRegistrationMode()
	account, err := a.accountService.Register(&form, mode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationShut):
			session.AddFlash(c, "error", "Registration is closed.")
			c.Redirect(http.StatusSeeOther, "/login")
		case errors.Is(err, service.ErrDuplicateUsername),
			errors.Is(err, service.ErrDuplicateEmail),
			errors.Is(err, service.ErrPasswordTooShort),
			errors.Is(err, service.ErrWrongChallenge),
			errors.Is(err, service.ErrMissingField):
			session.AddFlash(c, "error", err.Error())
			c.Redirect(http.StatusSeeOther, "/register")
		default:
			logger.Error("registration failed:", err)
			session.AddFlash(c, "error", "Something went wrong, please try again.")
			c.Redirect(http.StatusSeeOther, "/register")
		}
		return
	}

	logger.Infof("registered account %s (%s)", account.Username, account.Role)
	session.AddFlash(c, "success", "Account created, you can sign in now.")
	c.Redirect(http.StatusSeeOther, "/login")
}
