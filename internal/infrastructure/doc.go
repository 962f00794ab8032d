// Package infrastructure provides the cross-cutting services shared by the
// activity and dataset packages: the global slog JSON logger and trace-id
// context helpers, Prometheus counters, and the OpenTelemetry tracer.
//
// The logger is configured once from config.LoggingConfig:
//
//	logger, err := infrastructure.InitializeLogger(cfg.Logging)
//
// Components accept an optional *slog.Logger and fall back to GetLogger().
// Metrics are opt-in: pass a *Metrics built with NewMetrics to the component
// options; a nil *Metrics records nothing.
//
// Spans are started on Tracer(). InitializeTracing installs a stdout
// exporter when cfg.Tracing.Exporter is "stdout":
//
//	shutdown, err := infrastructure.InitializeTracing(cfg.Tracing, os.Stderr, logger)
//	defer shutdown(ctx)
package infrastructure
