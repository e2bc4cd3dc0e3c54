package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"samfit/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimitMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func hitFrom(r *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", ip)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitUsesConfiguredBudget(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 3
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = prev })

	r := rateLimitedRouter()
	ip := "203.0.113.10"
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hitFrom(r, ip))
	}
	assert.Equal(t, http.StatusTooManyRequests, hitFrom(r, ip))
}

func TestRateLimitIsPerIP(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 1
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = prev })

	r := rateLimitedRouter()
	assert.Equal(t, http.StatusOK, hitFrom(r, "203.0.113.20"))
	assert.Equal(t, http.StatusTooManyRequests, hitFrom(r, "203.0.113.20"))
	// A different caller still has its own budget.
	assert.Equal(t, http.StatusOK, hitFrom(r, "203.0.113.21"))
}

func TestGetClientIPPrecedence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() (*gin.Context, *http.Request) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request = req
		return c, req
	}

	c, req := newCtx()
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	assert.Equal(t, "198.51.100.7", getClientIP(c))

	c, req = newCtx()
	req.Header.Set("X-Real-IP", "198.51.100.8")
	assert.Equal(t, "198.51.100.8", getClientIP(c))

	c, req = newCtx()
	req.RemoteAddr = "198.51.100.9:4312"
	assert.Equal(t, "198.51.100.9", getClientIP(c))
}
