package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	admindomain "github.com/sngm3741/resort-crew/api/internal/admin/domain"
	"github.com/sngm3741/resort-crew/api/internal/apperr"
	"github.com/sngm3741/resort-crew/api/internal/pagination"
	publicdomain "github.com/sngm3741/resort-crew/api/internal/public/domain"
)

// moderationService implements ModerationService.
type moderationService struct {
	repo PostingRepository
	now  func() time.Time
}

func NewModerationService(repo PostingRepository) ModerationService {
	return &moderationService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *moderationService) List(ctx context.Context, filter PostingFilter, paging Paging) (pagination.Page[publicdomain.JobPosting], error) {
	var status publicdomain.PostingStatus
	if strings.TrimSpace(filter.Status) != "" {
		parsed, err := admindomain.NewPostingStatus(filter.Status)
		if err != nil {
			return pagination.Page[publicdomain.JobPosting]{}, apperr.Invalid("status", err.Error())
		}
		status = parsed
	}

	postings, err := s.repo.ListPostings(ctx)
	if err != nil {
		return pagination.Page[publicdomain.JobPosting]{}, apperr.Upstream("postings", err)
	}

	keyword := admindomain.NewKeyword(filter.Keyword)
	employerID := strings.TrimSpace(filter.EmployerID)
	matched := make([]publicdomain.JobPosting, 0, len(postings))
	for _, p := range postings {
		if status != "" && p.Status != status {
			continue
		}
		if employerID != "" && p.EmployerID != employerID {
			continue
		}
		if !keyword.Matches(p) {
			continue
		}
		matched = append(matched, p)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i].CreatedAt, matched[j].CreatedAt
		if a == nil || b == nil {
			return a != nil
		}
		return a.After(*b)
	})
	return pagination.Apply(matched, paging.Page, paging.Limit), nil
}

func (s *moderationService) Detail(ctx context.Context, id string) (*publicdomain.JobPosting, error) {
	posting, err := s.repo.GetPosting(ctx, id)
	if err != nil {
		return nil, apperr.Upstream("posting", err)
	}
	if posting == nil {
		return nil, apperr.NotFound("posting", id)
	}
	return posting, nil
}

func (s *moderationService) Moderate(ctx context.Context, id string, cmd ModeratePostingCommand) (*publicdomain.JobPosting, error) {
	moderation := admindomain.Moderation{IsHidden: cmd.IsHidden}
	if cmd.Status != nil {
		status, err := admindomain.NewPostingStatus(*cmd.Status)
		if err != nil {
			return nil, apperr.Invalid("status", err.Error())
		}
		moderation.Status = &status
	}

	posting, err := s.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	updated, err := moderation.Apply(*posting, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateModeration(ctx, id, updated.Status, updated.Hidden(), *updated.UpdatedAt); err != nil {
		return nil, fmt.Errorf("update moderation: %w", err)
	}
	return &updated, nil
}
