package metrics

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/labstack/echo/v4"
)

// Collector counts requests and 5xx responses.
type Collector struct {
	requests uint64
	errors   uint64
}

// NewCollector creates a collector.
func NewCollector() *Collector {
	return &Collector{}
}

// IncRequests increments the request counter.
func (c *Collector) IncRequests() {
	atomic.AddUint64(&c.requests, 1)
}

// IncErrors increments the server-error counter.
func (c *Collector) IncErrors() {
	atomic.AddUint64(&c.errors, 1)
}

// Snapshot returns the current counter values.
func (c *Collector) Snapshot() (uint64, uint64) {
	return atomic.LoadUint64(&c.requests), atomic.LoadUint64(&c.errors)
}

// Middleware counts every request passing through the router.
func Middleware(collector *Collector) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			collector.IncRequests()
			err := next(c)
			if err != nil {
				if he, ok := err.(*echo.HTTPError); !ok || he.Code >= http.StatusInternalServerError {
					collector.IncErrors()
				}
			} else if c.Response().Status >= http.StatusInternalServerError {
				collector.IncErrors()
			}
			return err
		}
	}
}

// Handler exposes the counters in Prometheus text exposition format.
type Handler struct {
	collector *Collector
}

// NewHandler creates the exposition handler.
func NewHandler(collector *Collector) *Handler {
	return &Handler{collector: collector}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	var requests uint64
	var errors uint64
	if h.collector != nil {
		requests, errors = h.collector.Snapshot()
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_, _ = fmt.Fprintf(w, "# HELP talenthub_requests_total Total number of HTTP requests.\n")
	_, _ = fmt.Fprintf(w, "# TYPE talenthub_requests_total counter\n")
	_, _ = fmt.Fprintf(w, "talenthub_requests_total %d\n", requests)
	_, _ = fmt.Fprintf(w, "# HELP talenthub_errors_total Total number of 5xx HTTP responses.\n")
	_, _ = fmt.Fprintf(w, "# TYPE talenthub_errors_total counter\n")
	_, _ = fmt.Fprintf(w, "talenthub_errors_total %d\n", errors)
}
