package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/hello-users-api/internal/interface/http"
)

// UserModule wires the user CRUD handlers into routes under /user.

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/user")
	{
		users.GET("/", m.Handler.List)
		users.GET("/:id", m.Handler.Get)
		users.POST("/", m.Handler.Create)
		users.PUT("/:id", m.Handler.Update)
		users.DELETE("/:id", m.Handler.Delete)
	}
}
