package domain

import (
	"time"

	"github.com/sngm3741/resort-crew/api/internal/apperr"
	publicdomain "github.com/sngm3741/resort-crew/api/internal/public/domain"
)

// Moderation is an admin change to a posting. Nil fields are left untouched.
type Moderation struct {
	Status   *publicdomain.PostingStatus
	IsHidden *bool
}

// Empty reports whether the moderation changes nothing.
func (m Moderation) Empty() bool {
	return m.Status == nil && m.IsHidden == nil
}

// Apply returns the posting with the moderation applied.
func (m Moderation) Apply(posting publicdomain.JobPosting, now time.Time) (publicdomain.JobPosting, error) {
	if m.Empty() {
		return posting, apperr.Invalid("moderation", "status 또는 isHidden 중 하나는 지정해야 합니다")
	}
	if m.Status != nil {
		posting.Status = *m.Status
	}
	if m.IsHidden != nil {
		hidden := *m.IsHidden
		posting.IsHidden = &hidden
	}
	updatedAt := now
	posting.UpdatedAt = &updatedAt
	return posting, nil
}
