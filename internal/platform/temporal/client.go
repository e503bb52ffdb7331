// Package temporal dials the Temporal cluster shared by the cart API and worker.
package temporal

import (
	"errors"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
)

// ErrDisabled is returned by Dial when Temporal is switched off by configuration.
var ErrDisabled = errors.New("temporal disabled via TEMPORAL_DISABLED env")

// Config selects the cluster to dial.
type Config struct {
	Address   string
	Namespace string
	Disabled  bool
}

// Options builds client options with OpenTelemetry tracing and slog logging.
func Options(cfg Config, logger *slog.Logger, tracer trace.Tracer) (client.Options, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{Tracer: tracer})
	if err != nil {
		return client.Options{}, err
	}
	options := client.Options{
		HostPort:  cfg.Address,
		Namespace: cfg.Namespace,
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	if options.HostPort == "" {
		options.HostPort = client.DefaultHostPort
	}
	if options.Namespace == "" {
		options.Namespace = client.DefaultNamespace
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return options, nil
}

// Dial connects to Temporal. It returns ErrDisabled without dialing when cfg.Disabled is set.
func Dial(cfg Config, logger *slog.Logger, tracer trace.Tracer) (client.Client, error) {
	if cfg.Disabled {
		return nil, ErrDisabled
	}
	options, err := Options(cfg, logger, tracer)
	if err != nil {
		return nil, err
	}
	return client.Dial(options)
}
