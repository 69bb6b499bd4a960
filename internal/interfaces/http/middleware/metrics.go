package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records finished HTTP requests
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// HTTPMetrics reports every request to observer, labelled by the matched
// route pattern rather than the raw path to keep label cardinality bounded.
func HTTPMetrics(observer RequestObserver, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		observer.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
