package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "rgbwallet"

const (
	// Counter ...
	Counter instrument = iota
	// Histogram ...
	Histogram
)

var (
	// ErrInstrumentNotSupported signals the specified instrument is not yet supported
	ErrInstrumentNotSupported = errors.New("instrument type unsupported")
	// ErrInstrumentTypeMismatch signal the type of the instrument is not expected
	ErrInstrumentTypeMismatch = errors.New("instrument is not of the expected type")
)

var (
	registry  = prometheus.NewRegistry()
	setupOnce sync.Once
	setupErr  error

	// Call counters for each route, method and returned status
	apiRequestCounter *prometheus.CounterVec
	// Time taken to answer, per route
	apiRequestDuration *prometheus.HistogramVec
	// Failures returned by the RGB node, per error kind
	backendErrorCounter *prometheus.CounterVec
)

// abstract prometheus types
type instrument int

type instrumentOpts struct {
	opts    prometheus.Opts
	buckets []float64
	vectors []string
}

type mi struct {
	counterV   *prometheus.CounterVec
	histogramV *prometheus.HistogramVec
}

// InstrumentOption - vararg for instrument options setting
type InstrumentOption func(o *instrumentOpts)

// Vectors - configuration used to create a vector of a given interface, slice of label names
func Vectors(labels ...string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.vectors = labels
	}
}

// Help - set the help field on instrument
func Help(help string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Help = help
	}
}

// Namespace - set namespace
func Namespace(ns string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Namespace = ns
	}
}

// Buckets - specific to histogram type
func Buckets(b []float64) InstrumentOption {
	return func(o *instrumentOpts) {
		o.buckets = b
	}
}

// AddInstrument configures and registers a new vector instrument on the
// service registry.
func AddInstrument(t instrument, name string, opts ...InstrumentOption) (*mi, error) {
	var col prometheus.Collector
	ret := mi{}
	opt := instrumentOpts{
		opts: prometheus.Opts{
			Name: name,
		},
	}
	for _, o := range opts {
		o(&opt)
	}

	switch t {
	case Counter:
		ret.counterV = prometheus.NewCounterVec(prometheus.CounterOpts(opt.opts), opt.vectors)
		col = ret.counterV
	case Histogram:
		ret.histogramV = prometheus.NewHistogramVec(opt.histogram(), opt.vectors)
		col = ret.histogramV
	default:
		return nil, ErrInstrumentNotSupported
	}

	if err := registry.Register(col); err != nil {
		return nil, errors.Wrapf(err, "couldn't register instrument %s", name)
	}
	return &ret, nil
}

func (i instrumentOpts) histogram() prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Name:        i.opts.Name,
		Namespace:   i.opts.Namespace,
		Subsystem:   i.opts.Subsystem,
		ConstLabels: i.opts.ConstLabels,
		Help:        i.opts.Help,
		Buckets:     i.buckets,
	}
}

// CounterVec returns a prometheus CounterVec instrument
func (m mi) CounterVec() (*prometheus.CounterVec, error) {
	if m.counterV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.counterV, nil
}

// HistogramVec returns a prometheus HistogramVec instrument
func (m mi) HistogramVec() (*prometheus.HistogramVec, error) {
	if m.histogramV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.histogramV, nil
}

// Setup registers the collectors. It can be called more than once, only the
// first call registers anything. Until it is called, the recording functions
// are no-ops.
func Setup() error {
	setupOnce.Do(func() {
		setupErr = setupMetrics()
	})
	return setupErr
}

// Registry returns the registry the collectors are registered on.
func Registry() *prometheus.Registry {
	return registry
}

func setupMetrics() error {
	h, err := AddInstrument(
		Counter,
		"api_requests_total",
		Namespace(namespace),
		Vectors("route", "method", "status"),
		Help("Number of requests answered by the API"),
	)
	if err != nil {
		return err
	}
	rc, err := h.CounterVec()
	if err != nil {
		return err
	}

	h, err = AddInstrument(
		Histogram,
		"api_request_duration_seconds",
		Namespace(namespace),
		Vectors("route"),
		Buckets(prometheus.DefBuckets),
		Help("Time taken to answer a request"),
	)
	if err != nil {
		return err
	}
	rd, err := h.HistogramVec()
	if err != nil {
		return err
	}

	h, err = AddInstrument(
		Counter,
		"backend_errors_total",
		Namespace(namespace),
		Vectors("kind"),
		Help("Number of failures returned by the RGB node"),
	)
	if err != nil {
		return err
	}
	be, err := h.CounterVec()
	if err != nil {
		return err
	}

	apiRequestCounter = rc
	apiRequestDuration = rd
	backendErrorCounter = be
	return nil
}

// APIRequestAndTime updates the metrics for an answered request.
func APIRequestAndTime(route, method string, status int, duration time.Duration) {
	if apiRequestCounter == nil || apiRequestDuration == nil {
		return
	}
	apiRequestCounter.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	apiRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// BackendErrorInc increments the backend error counter.
func BackendErrorInc(kind string) {
	if backendErrorCounter == nil {
		return
	}
	backendErrorCounter.WithLabelValues(kind).Inc()
}
