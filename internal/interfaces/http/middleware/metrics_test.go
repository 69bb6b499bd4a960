package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type observed struct {
	method, route string
	status        int
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observed
}

func (r *recordingObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, observed{method, route, status})
}

func TestHTTPMetrics(t *testing.T) {
	obs := &recordingObserver{}
	router := gin.New()
	router.Use(HTTPMetrics(obs, "/metrics"))
	router.GET("/projects/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/projects/42", "/metrics", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, []observed{
		{http.MethodGet, "/projects/:id", http.StatusOK},
		{http.MethodGet, "", http.StatusNotFound},
	}, obs.seen)
}
