package domain

import "strings"

// ApplicationFilter narrows the employer dashboard. Zero values disable a predicate.
type ApplicationFilter struct {
	Status    Status
	PostingID string
	Query     string
}

// Matches ANDs status equality, posting equality and a case-insensitive match of
// Query against the candidate name and posting title.
func (f ApplicationFilter) Matches(app Application) bool {
	if f.Status != "" && app.Status != f.Status {
		return false
	}
	if f.PostingID != "" && app.PostingID != f.PostingID {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(app.JobseekerName), q) &&
			!strings.Contains(strings.ToLower(app.PostingTitle), q) {
			return false
		}
	}
	return true
}

// FilterApplications keeps the applications matching f, preserving order.
func FilterApplications(apps []Application, f ApplicationFilter) []Application {
	out := make([]Application, 0, len(apps))
	for _, app := range apps {
		if f.Matches(app) {
			out = append(out, app)
		}
	}
	return out
}
