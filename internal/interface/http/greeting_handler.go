package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/hello-users-api/pkg/greeting"
	"github.com/oksasatya/hello-users-api/pkg/response"
)

// GreetingHandler serves the stateless greeting endpoints. The legacy
// /me/:name/:hour surface shares the /hello semantics: an hour of 0 is a
// real evening hour on both.
type GreetingHandler struct{}

func NewGreetingHandler() *GreetingHandler { return &GreetingHandler{} }

func (h *GreetingHandler) Hello(c *gin.Context) {
	response.Message(c, http.StatusOK, greeting.Hello(c.Param("name")))
}

func (h *GreetingHandler) HelloAtHour(c *gin.Context) {
	hour, err := strconv.Atoi(c.Param("hour"))
	if err != nil {
		response.Err(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	response.Message(c, http.StatusOK, greeting.AtHour(c.Param("name"), hour))
}
