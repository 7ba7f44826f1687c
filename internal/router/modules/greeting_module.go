package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/hello-users-api/internal/interface/http"
)

// GreetingModule registers the greeting routes, including the legacy /me
// surface kept for existing clients.

type GreetingModule struct {
	Handler *handlers.GreetingHandler
}

func NewGreetingModule(h *handlers.GreetingHandler) *GreetingModule {
	return &GreetingModule{Handler: h}
}

func (m *GreetingModule) Register(rg *gin.RouterGroup) {
	rg.GET("/hello/:name", m.Handler.Hello)
	rg.GET("/hello/:name/:hour", m.Handler.HelloAtHour)
	rg.GET("/me/:name/:hour", m.Handler.HelloAtHour)
}
