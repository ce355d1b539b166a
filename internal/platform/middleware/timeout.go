package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestTimeout returns middleware that sets a context deadline on each
// incoming request. If the deadline is exceeded before the handler completes,
// the request context is cancelled and a 504 Gateway Timeout response is
// returned. The handler goroutine may outlive the request; the response
// writer is sealed when the deadline fires so late writes are discarded
// instead of racing the 504.
func RequestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))

			tw := &timeoutWriter{ResponseWriter: c.Response().Writer}
			c.Response().Writer = tw

			// Run handler in a goroutine so we can select on the context.
			done := make(chan error, 1)
			go func() {
				done <- next(c)
			}()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					return tw.writeTimeout()
				}
				// Other cancellation reasons, e.g. client disconnect.
				return ctx.Err()
			}
		}
	}
}

// timeoutWriter serializes access to the underlying writer between the
// handler goroutine and the deadline path.
type timeoutWriter struct {
	http.ResponseWriter
	mu          sync.Mutex
	timedOut    bool
	wroteHeader bool
}

func (w *timeoutWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return
	}
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		// Pretend the write succeeded so the handler finishes quietly.
		return len(b), nil
	}
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// writeTimeout seals the writer and sends the 504, unless the handler
// already started the response (partial write).
func (w *timeoutWriter) writeTimeout() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.timedOut = true
	if w.wroteHeader {
		return nil
	}
	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	w.ResponseWriter.WriteHeader(http.StatusGatewayTimeout)
	_, err := w.ResponseWriter.Write([]byte(`{"message":"request processing exceeded the allowed time limit"}` + "\n"))
	return err
}
