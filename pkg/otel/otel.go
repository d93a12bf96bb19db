package otel

import (
	"context"
	"errors"
	"os"
	"strings"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

const instrumentationName = "github.com/gbarnett-hz/langchain"

var (
	EnableDebug     = false
	EnableTelemetry = false
)

func init() {
	EnableDebug = os.Getenv("DEBUG") != ""
	EnableTelemetry = os.Getenv("TELEMETRY") != ""
}

type Observable interface {
	otelSetup()
}

type ShutdownFunc func(ctx context.Context) error

// Setup installs the otlp log, metric and trace providers. It is a no-op
// unless telemetry is enabled.
func Setup(ctx context.Context, serviceName, serviceVersion string) (ShutdownFunc, error) {
	if !EnableTelemetry {
		return func(context.Context) error { return nil }, nil
	}

	resource, err := sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)

	if err != nil {
		return nil, err
	}

	var shutdowns []ShutdownFunc

	shutdown := func(ctx context.Context) error {
		var errs []error

		for _, fn := range shutdowns {
			errs = append(errs, fn(ctx))
		}

		return errors.Join(errs...)
	}

	for _, setup := range []func(context.Context, *sdkresource.Resource) (ShutdownFunc, error){
		setupLogger,
		setupMeter,
		setupTracer,
	} {
		fn, err := setup(ctx, resource)

		if err != nil {
			return nil, errors.Join(err, shutdown(ctx))
		}

		shutdowns = append(shutdowns, fn)
	}

	return shutdown, nil
}

// useGRPC reports whether the otlp exporter for signal ("logs", "metrics",
// "traces") is configured for grpc rather than http.
func useGRPC(signal string) bool {
	if strings.EqualFold(os.Getenv("OTEL_EXPORTER_OTLP_PROTOCOL"), "grpc") {
		return true
	}

	return strings.EqualFold(os.Getenv("OTEL_EXPORTER_OTLP_"+strings.ToUpper(signal)+"_PROTOCOL"), "grpc")
}
