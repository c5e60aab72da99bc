package tracing

import (
	"fmt"
	"net/http"
	"time"

	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/2beens/blogdesk/internal/middleware"
)

var GlobalTracer = otel.Tracer("blogdesk")

// HoneycombSetup configures the OpenTelemetry SDK to export to honeycomb. When disabled,
// the global no-op tracer provider stays in place and the returned shutdown does nothing.
// Needs HONEYCOMB_API_KEY and OTEL_SERVICE_NAME env vars to be set.
func HoneycombSetup(enabled bool) (func(), error) {
	if !enabled {
		log.Debugln("honeycomb tracing disabled")
		return func() {}, nil
	}

	// enable multi-span attributes
	bsp := honeycomb.NewBaggageSpanProcessor()

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithSpanProcessor(bsp),
	)
	if err != nil {
		return nil, fmt.Errorf("configure open telemetry: %w", err)
	}

	log.Debugln("honeycomb tracing set up")
	return otelShutdown, nil
}

// NewTracedHttpClient wraps the default transport with otel spans for every outgoing request.
// Zero timeout means no timeout.
func NewTracedHttpClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(
			middleware.Chain(http.DefaultTransport, middleware.UserAgent(), middleware.LogRequest()),
		),
		Timeout: timeout,
	}
}
