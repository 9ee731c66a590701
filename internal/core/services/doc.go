// Package services orchestrates the harvesting pipelines: fork
// scanning and remediation, follower enrichment and export, and
// contributor analysis. Each service composes the driven ports and
// resolves to either a success summary or a single error for the
// caller to render.
package services
