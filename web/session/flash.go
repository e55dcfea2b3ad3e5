package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Type    string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// AddFlash queues a notice on the session.
func AddFlash(c *gin.Context, kind, message string) {
	s := sessions.Default(c)
	s.AddFlash(Flash{Type: kind, Message: message})
	_ = s.Save()
}

// TakeFlashes drains queued notices, saving the session so they are
// shown once.
func TakeFlashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) > 0 {
		_ = s.Save()
	}
	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
