package infra

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/fx"

	"exusiai.dev/beatmap/internal/app/appconfig"
	"exusiai.dev/beatmap/internal/pkg/bininfo"
	"exusiai.dev/beatmap/internal/pkg/observability"
)

// TracingInit installs the global tracer provider with side-effect. When tracing is
// disabled the otel no-op provider stays in place.
func TracingInit(conf *appconfig.Config, lc fx.Lifecycle) error {
	if !conf.TracingEnabled {
		log.Debug().
			Str("evt.name", "infra.tracing.disabled").
			Msg("tracing is disabled")
		return nil
	}

	opts := []tracesdk.TracerProviderOption{
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(conf.TracingSampleRate))),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(observability.ServiceName),
			attribute.String("service.version", bininfo.Version),
		)),
	}

	for _, name := range conf.TracingExporters {
		exporter, err := newExporter(name)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s trace exporter", name)
		}
		opts = append(opts, tracesdk.WithBatcher(exporter))
	}

	tracerProvider := tracesdk.NewTracerProvider(opts...)
	otel.SetTracerProvider(tracerProvider)

	log.Info().
		Str("evt.name", "infra.tracing.enabled").
		Strs("exporters", conf.TracingExporters).
		Float64("sampleRate", conf.TracingSampleRate).
		Msg("tracing is enabled")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// flush pending spans before the command exits
			return tracerProvider.Shutdown(ctx)
		},
	})

	return nil
}

func newExporter(name string) (tracesdk.SpanExporter, error) {
	switch name {
	case appconfig.ExporterJaeger:
		return jaeger.New(jaeger.WithCollectorEndpoint())
	case appconfig.ExporterOTLP:
		return otlptrace.New(context.Background(), otlptracegrpc.NewClient())
	case appconfig.ExporterStdout:
		return stdouttrace.New(stdouttrace.WithWriter(os.Stderr), stdouttrace.WithPrettyPrint())
	default:
		return nil, errors.Errorf("unknown exporter %q", name)
	}
}
