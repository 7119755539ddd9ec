package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 统计 HTTP 请求的耗时、次数和正在处理中的请求数
type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
	inflight   prometheus.Gauge
}

// NewMetricsBuilder reg 为 nil 时注册到默认的 Registerer 上
func NewMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	labels := []string{"method", "path", "status_code"}
	return &MetricsBuilder{
		summaryVec: factory.NewSummaryVec(prometheus.SummaryOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.005,
				0.99: 0.001,
			},
		}, labels),
		counterVec: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, labels),
		inflight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests being served",
		}),
	}
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		a.inflight.Inc()
		defer a.inflight.Dec()

		ctx.Next()

		method := ctx.Request.Method
		// 用路由模板做标签，避免路径参数导致标签爆炸
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())
		a.summaryVec.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		a.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
