package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

// NewMetricsBuilder 指标注册到 reg 上，测试里面可以传入独立的 Registry
func NewMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	labels := []string{"method", "path", "status_code"}
	summaryVec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: "devcollab",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, labels)
	counterVec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devcollab",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, labels)
	reg.MustRegister(summaryVec, counterVec)
	return &MetricsBuilder{
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		duration := time.Since(start).Seconds()

		path := ctx.FullPath()
		if path == "" {
			// 没有匹配上路由的请求统一归到一起，避免 label 爆炸
			path = "unmatched"
		}
		method := ctx.Request.Method
		statusCode := strconv.Itoa(ctx.Writer.Status())
		a.summaryVec.WithLabelValues(method, path, statusCode).Observe(duration)
		a.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
