package utils

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MetricContentMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sitepress",
		Name:      "content_mutations_total",
		Help:      "Number of blog posts and advertisements created, updated or deleted",
	}, []string{"resource", "action"})

	MetricLoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sitepress",
		Name:      "login_attempts_total",
		Help:      "Number of login attempts by outcome",
	}, []string{"outcome"})

	MetricHttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sitepress",
		Name:      "http_request_duration_seconds",
		Help:      "Latency of the http requests by route and status",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func PrometheusMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	MetricHttpRequestDuration.
		With(prometheus.Labels{
			"method": c.Request.Method,
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		}).
		Observe(time.Since(start).Seconds())
}
