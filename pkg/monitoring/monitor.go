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

	// AttemptsSubmitted 已评分并保存的答题提交次数
	AttemptsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_attempts_submitted_total",
			Help: "Total number of graded quiz attempts",
		},
	)

	// AttemptScoreRatio 得分率分布 (score / maxScore)
	AttemptScoreRatio = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quiz_attempt_score_ratio",
			Help:    "Distribution of attempt score / max score",
			Buckets: []float64{0, 0.25, 0.5, 0.75, 0.9, 1},
		},
	)

	// RuleRejections 题目/选项写入被一致性规则拒绝的次数
	RuleRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_rule_rejections_total",
			Help: "Writes rejected by question/option consistency rules",
		},
		[]string{"rule"},
	)

	// CacheLookups 公开测验缓存命中情况
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_public_cache_lookups_total",
			Help: "Public quiz cache lookups by result",
		},
		[]string{"result"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(AttemptsSubmitted)
	prometheus.MustRegister(AttemptScoreRatio)
	prometheus.MustRegister(RuleRejections)
	prometheus.MustRegister(CacheLookups)
}

// ObserveAttempt 记录一次评分结果
func ObserveAttempt(score, maxScore int) {
	AttemptsSubmitted.Inc()
	if maxScore > 0 {
		AttemptScoreRatio.Observe(float64(score) / float64(maxScore))
	}
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
