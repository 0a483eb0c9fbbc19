package model

import "time"

// NotificationType classifies an in-app notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// NotificationFilter narrows a notification listing by read state.
type NotificationFilter string

const (
	NotificationsAll    NotificationFilter = "all"
	NotificationsRead   NotificationFilter = "read"
	NotificationsUnread NotificationFilter = "unread"
)

// Notification is an in-app notification. The feed is session-scoped
// and never persisted.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	IsRead    bool             `json:"is_read"`
	RecipeID  string           `json:"recipe_id,omitempty"`
}
