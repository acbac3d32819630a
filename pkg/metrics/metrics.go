// Package metrics 提供 Prometheus helper，包含常用 counter/gauge/histogram 模板
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wyfcoding/riskanalytics/pkg/logger"
)

// Metrics 指标集合
type Metrics struct {
	// HTTP 请求计数
	HTTPRequestsTotal prometheus.Counter
	// HTTP 请求耗时
	HTTPRequestDuration prometheus.Histogram
	// HTTP 响应大小
	HTTPResponseSize prometheus.Histogram
	// 正在处理的 HTTP 请求数
	HTTPRequestsInFlight prometheus.Gauge

	// 情景运行计数
	ScenarioRunsTotal prometheus.Counter
	// 情景运行耗时
	ScenarioRunDuration prometheus.Histogram
	// 生成的持仓簿计数
	BooksGeneratedTotal prometheus.Counter
	// 历史序列缓存命中计数
	HistoryCacheHitsTotal prometheus.Counter
	// 历史序列缓存未命中计数
	HistoryCacheMissesTotal prometheus.Counter
	// 发布的事件计数
	EventsPublishedTotal prometheus.Counter
	// 事件发布失败计数
	EventPublishErrorsTotal prometheus.Counter
}

// New 创建指标实例
func New(serviceName string) *Metrics {
	return &Metrics{
		// HTTP 指标
		HTTPRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "riskanalytics",
			Subsystem: serviceName,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}),
		HTTPRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "riskanalytics",
			Subsystem: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		HTTPResponseSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "riskanalytics",
			Subsystem: serviceName,
			Name:      "http_response_size_bytes",
			Help:      "HTTP response size in bytes",
			Buckets:   []float64{100, 1000, 10000, 100000, 1000000},
		}),
		HTTPRequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "riskanalytics",
			Subsystem: serviceName,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		}),

		// 业务指标
		ScenarioRunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "riskanalytics",
			Subsystem: serviceName,
			Name:      "scenario_runs_total",
			Help:      "Total scenario analysis runs",
		}),
		ScenarioRunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "riskanalytics",
			Subsystem: serviceName,
			Name:      "scenario_run_duration_seconds",
			Help:      "Scenario analysis run duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		BooksGeneratedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "riskanalytics",
			Subsystem: serviceName,
			Name:      "books_generated_total",
			Help:      "Total synthetic position books generated",
		}),
		HistoryCacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "riskanalytics",
			Subsystem: serviceName,
			Name:      "history_cache_hits_total",
			Help:      "Total risk history cache hits",
		}),
		HistoryCacheMissesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "riskanalytics",
			Subsystem: serviceName,
			Name:      "history_cache_misses_total",
			Help:      "Total risk history cache misses",
		}),
		EventsPublishedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "riskanalytics",
			Subsystem: serviceName,
			Name:      "events_published_total",
			Help:      "Total domain events published",
		}),
		EventPublishErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "riskanalytics",
			Subsystem: serviceName,
			Name:      "event_publish_errors_total",
			Help:      "Total domain event publish failures",
		}),
	}
}

// Register 注册所有指标
func (m *Metrics) Register() error {
	metrics := []prometheus.Collector{
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPResponseSize,
		m.HTTPRequestsInFlight,
		m.ScenarioRunsTotal,
		m.ScenarioRunDuration,
		m.BooksGeneratedTotal,
		m.HistoryCacheHitsTotal,
		m.HistoryCacheMissesTotal,
		m.EventsPublishedTotal,
		m.EventPublishErrorsTotal,
	}

	for _, metric := range metrics {
		if err := prometheus.DefaultRegisterer.Register(metric); err != nil {
			logger.Error(context.Background(), "Failed to register metric", "error", err)
			return err
		}
	}

	logger.Info(context.Background(), "Metrics registered successfully")
	return nil
}

// Handler 返回 Prometheus 指标的 HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// StartHTTPServer 启动独立的 Prometheus HTTP 服务器
func StartHTTPServer(port int, path string) error {
	if path == "" {
		path = "/metrics"
	}

	http.Handle(path, promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	logger.Info(context.Background(), "Starting Prometheus HTTP server", "addr", addr, "path", path)

	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			logger.Error(context.Background(), "Failed to start Prometheus HTTP server", "error", err)
		}
	}()

	return nil
}

// MetricsCollector 指标收集器接口
type MetricsCollector interface {
	// 记录 HTTP 请求
	RecordHTTPRequest(method, path string, statusCode int, duration float64, responseSize int64)
	// 记录正在处理的请求增减
	IncInFlight()
	DecInFlight()
	// 记录情景运行
	RecordScenarioRun(duration float64)
	// 记录持仓簿生成
	RecordBookGenerated()
	// 记录历史缓存命中
	RecordHistoryCacheHit()
	// 记录历史缓存未命中
	RecordHistoryCacheMiss()
	// 记录事件发布
	RecordEventPublished(err error)
}

// DefaultMetricsCollector 默认指标收集器实现
type DefaultMetricsCollector struct {
	metrics *Metrics
}

// NewDefaultMetricsCollector 创建默认指标收集器
func NewDefaultMetricsCollector(metrics *Metrics) *DefaultMetricsCollector {
	return &DefaultMetricsCollector{
		metrics: metrics,
	}
}

// RecordHTTPRequest 记录 HTTP 请求
func (dmc *DefaultMetricsCollector) RecordHTTPRequest(method, path string, statusCode int, duration float64, responseSize int64) {
	dmc.metrics.HTTPRequestsTotal.Inc()
	dmc.metrics.HTTPRequestDuration.Observe(duration)
	dmc.metrics.HTTPResponseSize.Observe(float64(responseSize))
}

// IncInFlight 正在处理的请求 +1
func (dmc *DefaultMetricsCollector) IncInFlight() {
	dmc.metrics.HTTPRequestsInFlight.Inc()
}

// DecInFlight 正在处理的请求 -1
func (dmc *DefaultMetricsCollector) DecInFlight() {
	dmc.metrics.HTTPRequestsInFlight.Dec()
}

// RecordScenarioRun 记录情景运行
func (dmc *DefaultMetricsCollector) RecordScenarioRun(duration float64) {
	dmc.metrics.ScenarioRunsTotal.Inc()
	dmc.metrics.ScenarioRunDuration.Observe(duration)
}

// RecordBookGenerated 记录持仓簿生成
func (dmc *DefaultMetricsCollector) RecordBookGenerated() {
	dmc.metrics.BooksGeneratedTotal.Inc()
}

// RecordHistoryCacheHit 记录历史缓存命中
func (dmc *DefaultMetricsCollector) RecordHistoryCacheHit() {
	dmc.metrics.HistoryCacheHitsTotal.Inc()
}

// RecordHistoryCacheMiss 记录历史缓存未命中
func (dmc *DefaultMetricsCollector) RecordHistoryCacheMiss() {
	dmc.metrics.HistoryCacheMissesTotal.Inc()
}

// RecordEventPublished 记录事件发布结果
func (dmc *DefaultMetricsCollector) RecordEventPublished(err error) {
	if err != nil {
		dmc.metrics.EventPublishErrorsTotal.Inc()
		return
	}
	dmc.metrics.EventsPublishedTotal.Inc()
}
