// Package domain contains the core data model of the harvesting
// pipeline: credentials, repository snapshots, follower identities and
// their enriched records, and the flat contributor export rows.
// It has no dependencies on transport or presentation code.
package domain
