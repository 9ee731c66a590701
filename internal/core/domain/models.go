package domain

// Credential holds the username and personal access token for the
// authenticated GitHub account. Both fields must be non-empty before any
// authenticated operation is attempted.
type Credential struct {
	// Username is the GitHub login of the account owner.
	Username string `toml:"username"`
	// Token is the personal access token used as a bearer credential.
	Token string `toml:"token"`
}

// IsValid returns true if both username and token are present.
func (c Credential) IsValid() bool {
	return c.Username != "" && c.Token != ""
}

// RepositoryRef is an immutable snapshot of a repository listing entry.
// The full listing is retained in memory for the session only.
type RepositoryRef struct {
	// FullName is the "owner/name" identifier.
	FullName string `json:"full_name"`
	// HTMLURL is the browser URL of the repository.
	HTMLURL string `json:"html_url"`
	// Description may be empty.
	Description string `json:"description,omitempty"`
	// IsFork reports whether the repository is a fork.
	IsFork bool `json:"fork"`
}

// FollowerIdentity is the minimal handle used to request enrichment
// for a single follower.
type FollowerIdentity struct {
	Login string `json:"login"`
}

// EnrichedFollower is the per-follower detail record derived from one
// network round trip. Free-text fields are pointers so that an absent
// value survives sanitisation and export as "absent", not "empty".
// Its lifetime ends at export.
type EnrichedFollower struct {
	Name        *string `json:"name,omitempty"`
	Company     *string `json:"company,omitempty"`
	Blog        *string `json:"blog,omitempty"`
	Email       *string `json:"email,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	// CreatedAt is the account creation timestamp as returned by the
	// API (ISO-8601); reformatting happens at export time.
	CreatedAt string `json:"created_at"`
}

// RepositoryDetails is the denormalised repository half of a
// ContributorRecord.
type RepositoryDetails struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	OpenIssues  int    `json:"open_issues_count"`
	// CreatedAt is the repository creation timestamp (ISO-8601).
	CreatedAt string `json:"created_at"`
}

// Contribution is one contributor entry of a repository listing.
type Contribution struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
}

// ContributorRecord is one flat export row per contributor of a single
// repository. Repository fields are duplicated across rows so the
// export is self-contained.
type ContributorRecord struct {
	ContributorLogin string
	Contributions    int
	RepoName         string
	RepoDescription  string
	RepoStars        int
	RepoForks        int
	RepoOpenIssues   int
	RepoCreatedAt    string
}
