package session

import (
	"encoding/gob"

	"orderdesk/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginAccount = "LOGIN_ACCOUNT"

func init() {
	gob.Register(model.Account{})
}

func SetLoginAccount(c *gin.Context, account *model.Account) error {
	s := sessions.Default(c)
	s.Set(loginAccount, *account)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func GetLoginAccount(c *gin.Context) *model.Account {
	s := sessions.Default(c)
	if obj := s.Get(loginAccount); obj != nil {
		if account, ok := obj.(model.Account); ok {
			return &account
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginAccount(c) != nil
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
