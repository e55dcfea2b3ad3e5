package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"orderdesk/database/model"
	"orderdesk/web/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(sessions.Sessions("orderdesk-test", cookie.NewStore([]byte("test-secret"))))

	engine.GET("/become/:role", func(c *gin.Context) {
		account := &model.Account{Id: 1, Username: "tester", Role: model.Role(c.Param("role"))}
		_ = session.SetLoginAccount(c, account)
		c.Status(http.StatusOK)
	})

	admin := engine.Group("/admin", RequireRole(model.RoleAdmin))
	admin.GET("/users", func(c *gin.Context) { c.Status(http.StatusOK) })

	staff := engine.Group("/dashboard", RequireRole(model.RoleAdmin, model.RoleEmployee))
	staff.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	return engine
}

func loginAs(t *testing.T, engine *gin.Engine, role string) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/become/"+role, nil)
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login setup returned %d", w.Code)
	}
	return w.Result().Cookies()
}

func TestRequireRoleRedirectsAnonymousToLogin(t *testing.T) {
	engine := testEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, expected 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("redirect = %q, expected /login", loc)
	}
}

func TestRequireRoleAllowsListedRoles(t *testing.T) {
	engine := testEngine()
	cookies := loginAs(t, engine, "employee")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200", w.Code)
	}
}

func TestRequireRoleRedirectsWrongRoleWithNotice(t *testing.T) {
	engine := testEngine()
	cookies := loginAs(t, engine, "employee")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, expected 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("redirect = %q, expected /dashboard", loc)
	}
}

func TestRequireRoleAdmitsAdminEverywhere(t *testing.T) {
	engine := testEngine()
	cookies := loginAs(t, engine, "admin")

	for _, path := range []string{"/admin/users", "/dashboard/"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d, expected 200", path, w.Code)
		}
	}
}
