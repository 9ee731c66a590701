// Package driven defines the outbound ports of the pipeline: the
// GitHub gateway capabilities the services depend on, and the tabular
// exporter that serialises harvested records. Adapters under
// internal/connectors and internal/export implement these interfaces.
package driven
