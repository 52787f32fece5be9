// Package instrumentation provides OpenTelemetry metrics for whenami.
//
// The CLI is a one-shot process, so the only exporter is the stdout metrics
// exporter: when enabled, collected metrics are flushed once on shutdown.
// When disabled, all recorders are no-ops.
package instrumentation
