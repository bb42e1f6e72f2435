package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/sngm3741/resort-crew/api/internal/apperr"
	"github.com/sngm3741/resort-crew/api/internal/pagination"
	"github.com/sngm3741/resort-crew/api/internal/recruiting/domain"
)

type notificationService struct {
	repo NotificationRepository
}

// NewNotificationService creates the inbox service.
func NewNotificationService(repo NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context, userID string, paging Paging) (NotificationList, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return NotificationList{}, apperr.Upstream("notifications", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	unread := 0
	for _, n := range items {
		if !n.IsRead {
			unread++
		}
	}
	return NotificationList{
		Page:   pagination.Apply(items, paging.Page, paging.Limit),
		Unread: unread,
	}, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	n, err := s.repo.FindByID(ctx, notificationID)
	if err != nil {
		return nil, apperr.Upstream("notification", err)
	}
	if n == nil || n.UserID != userID {
		return nil, apperr.NotFound("notification", notificationID)
	}
	if !n.MarkRead() {
		return n, nil
	}
	if err := s.repo.Save(ctx, n); err != nil {
		return nil, fmt.Errorf("save notification: %w", err)
	}
	return n, nil
}
