package domain

import "fmt"

// RemediationPhase names one half of the star-then-delete cleanup.
type RemediationPhase string

const (
	// PhaseStar is the starring call (PUT, expects 204).
	PhaseStar RemediationPhase = "star"
	// PhaseDelete is the repository deletion call (DELETE, expects 204).
	PhaseDelete RemediationPhase = "delete"
)

// RemediationResult reports the outcome of remediating one fork.
// Success requires both phases to complete. When the star phase fails
// the delete is never attempted. When the delete phase fails after a
// successful star, the repository remains starred but not deleted;
// there is no compensating rollback, the caller decides on manual
// reconciliation.
type RemediationResult struct {
	// Repo is the "owner/name" the remediation was applied to.
	Repo string
	// FailedPhase is empty on success, otherwise the phase that failed.
	FailedPhase RemediationPhase
	// Starred reports whether the star phase completed. True together
	// with FailedPhase == PhaseDelete is the starred-not-deleted state.
	Starred bool
	// Err is the underlying failure of FailedPhase, nil on success.
	Err error
}

// Succeeded returns true if both phases completed.
func (r RemediationResult) Succeeded() bool {
	return r.FailedPhase == ""
}

// String renders a one-line human-readable outcome.
func (r RemediationResult) String() string {
	if r.Succeeded() {
		return fmt.Sprintf("%s: starred and deleted", r.Repo)
	}
	if r.FailedPhase == PhaseDelete && r.Starred {
		return fmt.Sprintf("%s: starred but not deleted (%v)", r.Repo, r.Err)
	}
	return fmt.Sprintf("%s: %s failed (%v)", r.Repo, r.FailedPhase, r.Err)
}

// EnrichmentStats tallies fan-out outcomes. Throttled counts
// identities dropped after the retry budget was exhausted, Failed
// counts identities dropped on a hard HTTP error.
type EnrichmentStats struct {
	Enriched  int
	Throttled int
	Failed    int
}

// Skipped returns the number of identities that produced no record.
func (s EnrichmentStats) Skipped() int {
	return s.Throttled + s.Failed
}
