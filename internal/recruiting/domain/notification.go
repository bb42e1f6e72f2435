package domain

import "time"

// NotificationType classifies notifications for rendering and delivery.
type NotificationType string

const (
	NotificationApplicationStatus NotificationType = "application_status"
	NotificationSystem            NotificationType = "system"
)

// Notification is a message for one user. ApplicationID and Status are set for
// notifications produced by an application decision.
type Notification struct {
	ID            string
	UserID        string
	Title         string
	Message       string
	Type          NotificationType
	IsRead        bool
	ApplicationID string
	Status        Status
	CreatedAt     time.Time
}

// MarkRead flags the notification as read. It reports whether anything changed.
func (n *Notification) MarkRead() bool {
	if n.IsRead {
		return false
	}
	n.IsRead = true
	return true
}
