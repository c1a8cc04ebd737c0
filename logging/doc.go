// Package logging provides a minimal logging interface and adapters for Nexus.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the graph, scorer and cycle controller use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - NexusLogger with contextual helpers (component, cycle)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	ctrl := cycle.NewController(g, mem, f, func(o *cycle.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
