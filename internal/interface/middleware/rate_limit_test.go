package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(t *testing.T, max int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.GET("/ping", RateLimit(rdb, max, time.Minute, KeyByIP(), nil, nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func ping(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_AllowsUnderLimit(t *testing.T) {
	r := newLimitedRouter(t, 2)

	w := ping(r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	r := newLimitedRouter(t, 2)

	ping(r)
	ping(r)
	w := ping(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimit_RemainingNeverNegative(t *testing.T) {
	r := newLimitedRouter(t, 2)

	var w *httptest.ResponseRecorder
	for i := 0; i < 5; i++ {
		w = ping(r)
	}
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_NilClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RateLimit(nil, 1, time.Minute, KeyByIP(), nil, nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := ping(r)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
