package middleware

import (
	"strconv"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

func Metrics(m *metrics.Metrics) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
