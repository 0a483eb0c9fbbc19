package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/foodieapp/backend/internal/model"
)

// NotificationService keeps the session's in-app notification feed,
// newest first. The feed lives in memory only.
type NotificationService struct {
	mu            sync.Mutex
	log           zerolog.Logger
	notifications []model.Notification
}

// NewNotificationService creates an empty feed.
func NewNotificationService(log zerolog.Logger) *NotificationService {
	return &NotificationService{
		log: log.With().Str("component", "notifications").Logger(),
	}
}

// Notify adds a notification to the feed. It implements Notifier and
// never fails.
func (s *NotificationService) Notify(title, message string, typ model.NotificationType, recipeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := model.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      typ,
		Timestamp: time.Now().UTC(),
		RecipeID:  recipeID,
	}
	s.notifications = append([]model.Notification{n}, s.notifications...)
	s.log.Debug().Str("title", title).Str("type", string(typ)).Msg("notification added")
}

// List returns the feed filtered by read state.
func (s *NotificationService) List(filter model.NotificationFilter) []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		switch filter {
		case model.NotificationsRead:
			if !n.IsRead {
				continue
			}
		case model.NotificationsUnread:
			if n.IsRead {
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationService) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// MarkRead marks one notification as read.
func (s *NotificationService) MarkRead(id string) error {
	return s.setRead(id, true)
}

// MarkUnread marks one notification as unread.
func (s *NotificationService) MarkUnread(id string) error {
	return s.setRead(id, false)
}

func (s *NotificationService) setRead(id string, read bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = read
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes one notification from the feed.
func (s *NotificationService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Clear empties the feed.
func (s *NotificationService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = nil
}
