package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/mdc/pkg/binding"
	"github.com/vango-dev/mdc/pkg/widget"
)

// Config configures a Collector.
type Config struct {
	// Namespace is the metrics namespace (default: "mdc").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for construction time.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the registry the metrics are registered with.
	// Default: a fresh prometheus.Registry
	Registry *prometheus.Registry
}

// Option configures a Collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "mdc",
		Buckets:   prometheus.DefBuckets,
	}
}

// Collector records widget lifecycle and connection metrics. It implements
// binding.Observer; pass it to a root with binding.WithObserver.
//
// Metrics collected:
//   - mdc_widgets_created_total: widgets constructed, by kind
//   - mdc_widgets_destroyed_total: widgets destroyed, by kind
//   - mdc_widgets_live: widgets constructed and not yet destroyed, by kind
//   - mdc_widget_create_seconds: construction time, by kind
//   - mdc_widget_errors_total: failed constructions and destroys, by kind and op
//   - mdc_values_pushed_total: controlled value pushes, by kind and result
//   - mdc_connections_active: open widget connections
//   - mdc_messages_total: client messages, by type
//   - mdc_websocket_errors_total: connection errors, by type
//
// A live gauge that keeps growing while connections stay flat points at
// widgets that are never destroyed.
type Collector struct {
	registry *prometheus.Registry

	created     *prometheus.CounterVec
	destroyed   *prometheus.CounterVec
	live        *prometheus.GaugeVec
	createTime  *prometheus.HistogramVec
	errors      *prometheus.CounterVec
	pushes      *prometheus.CounterVec
	connections prometheus.Gauge
	messages    *prometheus.CounterVec
	wsErrors    *prometheus.CounterVec
}

var _ binding.Observer = (*Collector)(nil)

// New registers the metrics and returns their collector.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		registry: config.Registry,

		created: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "widgets_created_total",
			Help:        "Total number of widgets constructed",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		destroyed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "widgets_destroyed_total",
			Help:        "Total number of widgets destroyed",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		live: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "widgets_live",
			Help:        "Number of widgets constructed and not yet destroyed",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		createTime: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "widget_create_seconds",
			Help:        "Widget construction time in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"kind"}),

		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "widget_errors_total",
			Help:        "Total number of failed widget constructions and destroys",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "op"}),

		pushes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "values_pushed_total",
			Help:        "Total number of controlled value pushes",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "result"}),

		connections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "connections_active",
			Help:        "Number of open widget connections",
			ConstLabels: config.ConstLabels,
		}),

		messages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "messages_total",
			Help:        "Total number of client messages by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "Total WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// WidgetCreated implements binding.Observer.
func (c *Collector) WidgetCreated(kind widget.Kind, took time.Duration) {
	c.created.WithLabelValues(string(kind)).Inc()
	c.live.WithLabelValues(string(kind)).Inc()
	c.createTime.WithLabelValues(string(kind)).Observe(took.Seconds())
}

// WidgetDestroyed implements binding.Observer.
func (c *Collector) WidgetDestroyed(kind widget.Kind) {
	c.destroyed.WithLabelValues(string(kind)).Inc()
	c.live.WithLabelValues(string(kind)).Dec()
}

// CreateFailed implements binding.Observer.
func (c *Collector) CreateFailed(kind widget.Kind) {
	c.errors.WithLabelValues(string(kind), "create").Inc()
}

// DestroyFailed implements binding.Observer. The widget is gone either
// way, so it leaves the live gauge.
func (c *Collector) DestroyFailed(kind widget.Kind, suppressed bool) {
	op := "destroy"
	if suppressed {
		op = "destroy_suppressed"
	}
	c.errors.WithLabelValues(string(kind), op).Inc()
	c.live.WithLabelValues(string(kind)).Dec()
}

// ValuePushed implements binding.Observer.
func (c *Collector) ValuePushed(kind widget.Kind, skipped bool) {
	result := "pushed"
	if skipped {
		result = "skipped_focus"
	}
	c.pushes.WithLabelValues(string(kind), result).Inc()
}

// ConnectionOpened records a new widget connection.
func (c *Collector) ConnectionOpened() { c.connections.Inc() }

// ConnectionClosed records a closed widget connection.
func (c *Collector) ConnectionClosed() { c.connections.Dec() }

// Message records a client message of the given type.
func (c *Collector) Message(typ string) { c.messages.WithLabelValues(typ).Inc() }

// WebSocketError records a connection error.
func (c *Collector) WebSocketError(errorType string) {
	c.wsErrors.WithLabelValues(errorType).Inc()
}

// Registry returns the registry the metrics live in.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
