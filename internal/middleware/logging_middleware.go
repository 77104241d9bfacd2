package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/annel0/isocity/internal/logging"
)

// TraceHeader - заголовок ответа с идентификатором трассировки запроса
const TraceHeader = "X-Trace-Id"

// RequestLogger снабжает каждый HTTP-запрос trace-ID и пишет краткие логи
type RequestLogger struct {
	log *logging.Logger
}

// NewRequestLogger создаёт логгер запросов компонента "http"
func NewRequestLogger() *RequestLogger {
	return &RequestLogger{log: logging.GetComponentLogger("http")}
}

// Wrap оборачивает обработчик логированием
func (rl *RequestLogger) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Пытаемся извлечь trace-id из OpenTelemetry, если уже создан.
		span := trace.SpanFromContext(r.Context())
		var traceID string
		if span.SpanContext().IsValid() {
			traceID = span.SpanContext().TraceID().String()
		} else {
			traceID = uuid.NewString()
		}
		w.Header().Set(TraceHeader, traceID)

		start := time.Now()
		rl.log.Debug("[HTTP] ▶ %s %s ip=%s trace=%s", r.Method, r.URL.Path, r.RemoteAddr, traceID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		rl.log.Debug("[HTTP] ◀ %s %s %d %s trace=%s", r.Method, r.URL.Path, rec.status, time.Since(start), traceID)
	})
}
