package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/sitekit/internal/platform/telemetry"
)

// OpenTelemetry returns middleware that opens a server span per request,
// continuing any W3C trace context sent by the browser, and records the
// server request metrics labelled by route. A nil metrics skips recording.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			tracer := otel.GetTracerProvider().Tracer("middleware")
			spanName := fmt.Sprintf("HTTP %s %s", r.Method, r.URL.Path)
			ctx, span := tracer.Start(ctx, spanName,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.url", r.URL.String()),
				),
			)
			defer span.End()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			// Slugs stay out of span names; the pattern is known only after routing.
			route := routePattern(r)
			if route != "" {
				span.SetName(fmt.Sprintf("HTTP %s %s", r.Method, route))
				span.SetAttributes(telemetry.AttrHTTPRoute.String(route))
			}

			status := rw.statusCode
			span.SetAttributes(
				telemetry.AttrHTTPStatus.Int(status),
				attribute.Bool("http.streamed", rw.streamed()),
			)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			recordServerMetrics(ctx, metrics, serverRequest{
				method:   r.Method,
				route:    route,
				status:   status,
				start:    start,
				streamed: rw.streamed(),
			})
		})
	}
}

// routePattern returns the chi route pattern matched for r, or "" when the
// request was not routed by chi.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}

type serverRequest struct {
	method   string
	route    string
	status   int
	start    time.Time
	streamed bool
}

// recordServerMetrics counts every request. Streamed responses stay out of
// the duration histogram since they last as long as the client stays.
func recordServerMetrics(ctx context.Context, metrics *telemetry.Metrics, req serverRequest) {
	if metrics == nil {
		return
	}

	result := "success"
	if req.status >= http.StatusBadRequest {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(req.method),
		telemetry.AttrHTTPRoute.String(req.route),
		telemetry.AttrHTTPStatus.Int(req.status),
		telemetry.AttrResult.String(result),
	)

	metrics.ServerRequestTotal.Add(ctx, 1, attrs)
	if !req.streamed {
		metrics.ServerRequestDuration.Record(ctx, time.Since(req.start).Seconds(), attrs)
	}
}
