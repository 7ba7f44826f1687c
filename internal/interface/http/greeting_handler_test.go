package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGreetingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewGreetingHandler()
	r.GET("/hello/:name", h.Hello)
	r.GET("/hello/:name/:hour", h.HelloAtHour)
	r.GET("/me/:name/:hour", h.HelloAtHour)
	return r
}

func TestHello_NoHour(t *testing.T) {
	r := newGreetingRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello/Dave", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hello, Dave!"}`, rec.Body.String())
}

func TestHello_WithHour(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/hello/Carol/0", `{"message":"Good evening, Carol! Now it's 0 o'clock."}`},
		{"/hello/Bob/7", `{"message":"Good morning, Bob! Now it's 7 o'clock."}`},
		{"/hello/Eve/15", `{"message":"Good afternoon, Eve! Now it's 15 o'clock."}`},
		{"/hello/Dan/22", `{"message":"Good evening, Dan! Now it's 22 o'clock."}`},
	}
	r := newGreetingRouter()
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, tt.path)
		assert.JSONEq(t, tt.want, rec.Body.String(), tt.path)
	}
}

// The legacy /me surface shares /hello semantics, including hour 0.
func TestMe_SameSemanticsAsHello(t *testing.T) {
	r := newGreetingRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me/Carol/0", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Good evening, Carol! Now it's 0 o'clock."}`, rec.Body.String())
}

func TestHello_NonIntegerHour(t *testing.T) {
	r := newGreetingRouter()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello/Dave/noon", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid request"}`, rec.Body.String())
}
