package telemetry_test

import (
	"context"
	"slices"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/sitekit/internal/platform/telemetry"
)

// Tracer tests are not parallel: InitTracer sets the global provider.

func TestInitTracer(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unsupported", exporter: "zipkin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			tp, err := telemetry.InitTracer(ctx, "sitekit-test", tt.exporter, tt.endpoint)
			if tt.wantErr {
				if err == nil {
					t.Fatal("InitTracer() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("InitTracer() error = %v", err)
			}
			// No collector runs in unit tests, so an OTLP flush may fail.
			t.Cleanup(func() { _ = tp.Shutdown(ctx) })

			fields := otel.GetTextMapPropagator().Fields()
			if !slices.Contains(fields, "traceparent") || !slices.Contains(fields, "baggage") {
				t.Errorf("propagator fields = %v, want traceparent and baggage", fields)
			}
		})
	}
}

func TestInitMeter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: telemetry.ExporterStdout},
		{name: "otlp", exporter: telemetry.ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp without endpoint", exporter: telemetry.ExporterOTLP, wantErr: true},
		{name: "unsupported", exporter: "prometheus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			mp, err := telemetry.InitMeter(ctx, "sitekit-test", tt.exporter, tt.endpoint)
			if tt.wantErr {
				if err == nil {
					t.Fatal("InitMeter() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("InitMeter() error = %v", err)
			}
			t.Cleanup(func() { _ = mp.Shutdown(ctx) })
		})
	}
}

func TestNewMetrics_RecordsDomainInstruments(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), telemetry.MeterScope)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	metrics.ServerRequestTotal.Add(ctx, 1)
	metrics.ServerRequestDuration.Record(ctx, 0.02)
	metrics.ClientRequestTotal.Add(ctx, 1)
	metrics.ClientRequestDuration.Record(ctx, 0.1)
	metrics.StoreReadFailures.Add(ctx, 1)
	metrics.ContactSubmissions.Add(ctx, 1)
	metrics.PresenceSubscribers.Add(ctx, 1)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var names []string
	for _, sm := range rm.ScopeMetrics {
		if sm.Scope.Name != telemetry.MeterScope {
			t.Errorf("scope = %q, want %q", sm.Scope.Name, telemetry.MeterScope)
		}
		for _, m := range sm.Metrics {
			names = append(names, m.Name)
		}
	}

	for _, want := range []string{
		"http.server.request.total",
		"http.server.request.duration",
		"http.client.request.total",
		"http.client.request.duration",
		"store.read.failures",
		"contact.submissions",
		"presence.subscribers",
	} {
		if !slices.Contains(names, want) {
			t.Errorf("instrument %q not collected (got %v)", want, names)
		}
	}
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), telemetry.MeterScope)
	if err != nil {
		t.Fatalf("NewMetrics(noop) error = %v", err)
	}

	metrics.StoreReadFailures.Add(context.Background(), 1)
	metrics.PresenceSubscribers.Add(context.Background(), -1)
}
