package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	SolvesRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_solves_recorded_total",
			Help: "Total number of solves recorded locally",
		},
	)

	RemoteWriteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_remote_write_failures_total",
			Help: "Best-effort remote writes that failed",
		},
		[]string{"operation"},
	)

	UploadFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_upload_failures_total",
			Help: "Solve image uploads that failed",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(SolvesRecorded)
	prometheus.MustRegister(RemoteWriteFailures)
	prometheus.MustRegister(UploadFailures)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
