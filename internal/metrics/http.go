package metrics

import (
	"net/http"
	"strconv"
	"time"
)

// Routes bounds the path label; anything else is reported as "other".
type Routes map[string]bool

// NewRoutes returns the form's fixed routes plus extra, which is where the
// configurable chat path goes.
func NewRoutes(extra ...string) Routes {
	rt := Routes{
		"/":                  true,
		"/register":          true,
		"/register/validate": true,
		"/health":            true,
	}
	for _, p := range extra {
		rt[p] = true
	}
	return rt
}

// responseWriter wraps http.ResponseWriter to capture status code and bytes written
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	wroteHeader  bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.wroteHeader = true
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

// Unwrap returns the underlying ResponseWriter for middleware compatibility
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// label maps a request path to a bounded metric label.
func (rt Routes) label(path string) string {
	if rt[path] {
		return path
	}
	return "other"
}

// Middleware records HTTP request metrics, labelling paths through routes.
func Middleware(routes Routes) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip metrics endpoint to avoid recursion
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			HTTPRequestsInFlight.Inc()
			defer HTTPRequestsInFlight.Dec()

			start := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			duration := time.Since(start).Seconds()
			path := routes.label(r.URL.Path)
			statusCode := strconv.Itoa(rw.statusCode)

			HTTPRequestsTotal.WithLabelValues(r.Method, path, statusCode).Inc()
			HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
		})
	}
}
