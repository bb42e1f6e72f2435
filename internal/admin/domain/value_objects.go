package domain

import (
	"fmt"
	"strings"

	publicdomain "github.com/sngm3741/resort-crew/api/internal/public/domain"
)

var allowedPostingStatuses = []publicdomain.PostingStatus{
	publicdomain.PostingDraft,
	publicdomain.PostingApproved,
	publicdomain.PostingRejected,
}

// NewPostingStatus validates a moderation status supplied by an admin.
func NewPostingStatus(value string) (publicdomain.PostingStatus, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return "", fmt.Errorf("status is required")
	}
	for _, allowed := range allowedPostingStatuses {
		if string(allowed) == trimmed {
			return allowed, nil
		}
	}
	return "", fmt.Errorf("invalid posting status: %s", trimmed)
}

type Keyword string

func NewKeyword(value string) Keyword {
	return Keyword(strings.ToLower(strings.TrimSpace(value)))
}

// Matches reports whether the keyword appears in the posting title or description.
func (k Keyword) Matches(p publicdomain.JobPosting) bool {
	if k == "" {
		return true
	}
	needle := string(k)
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}
