package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodieapp/backend/internal/model"
	"github.com/foodieapp/backend/internal/service"
)

// NotificationHandler exposes the in-app notification feed.
type NotificationHandler struct {
	notifications *service.NotificationService
}

// NewNotificationHandler creates the handler.
func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// RegisterRoutes mounts the notification routes on router.
func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.POST("/:id/read", h.MarkRead)
		notifications.POST("/:id/unread", h.MarkUnread)
		notifications.DELETE("/:id", h.Delete)
		notifications.DELETE("", h.Clear)
	}
}

// List returns the feed, optionally narrowed by ?filter=read|unread.
func (h *NotificationHandler) List(c *gin.Context) {
	filter := model.NotificationsAll
	switch v := c.Query("filter"); v {
	case "", string(model.NotificationsAll):
	case string(model.NotificationsRead):
		filter = model.NotificationsRead
	case string(model.NotificationsUnread):
		filter = model.NotificationsUnread
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": h.notifications.List(filter),
		"unread_count":  h.notifications.UnreadCount(),
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notifications.MarkRead(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "is_read": true})
}

func (h *NotificationHandler) MarkUnread(c *gin.Context) {
	if err := h.notifications.MarkUnread(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "is_read": false})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.notifications.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification deleted"})
}

func (h *NotificationHandler) Clear(c *gin.Context) {
	h.notifications.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "notifications cleared"})
}
