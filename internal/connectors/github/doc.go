// Package github is the data-retrieval layer of the pipeline. It wraps
// the go-github client behind one shared authenticated session and
// provides the pieces the services compose: cursor pagination over
// listing endpoints, a rate-limited single-resource fetcher with
// bounded retry, the star-then-delete fork remediation, and the
// bounded concurrent enrichment fan-out.
//
// Failure policy is asymmetric on purpose: listings and existence
// checks fail hard with *APIError (a partial page already collected is
// discarded), while per-identity detail fetches fail soft and are
// reported as tagged outcomes so callers can skip and count them.
package github
