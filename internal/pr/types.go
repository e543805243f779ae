// Package pr turns analyzed changesets into pull-request recommendations
// and drives the gateway's GitHub tools to act on them.
package pr

// Recommendation describes one suggested pull request.
type Recommendation struct {
	Title       string
	Description string
	Files       []string
	Category    string
	Priority    string
	ReviewTime  string
	Reviewers   []string
	Branch      string
	Labels      []string
}

// CreatedPR records the outcome of a create-pull-request call.
type CreatedPR struct {
	Title     string
	Branch    string
	Base      string
	Files     []string
	Labels    []string
	Reviewers []string
	Status    string
}
