package handler

import (
	"net/http"
	"strconv"

	"github.com/contractflow/backend/middleware"
	"github.com/contractflow/backend/model"
	"github.com/contractflow/backend/storage"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	store storage.Storage
}

func NewNotificationHandler(store storage.Storage) *NotificationHandler {
	return &NotificationHandler{store: store}
}

type CreateNotificationRequest struct {
	UserID            int    `json:"userId" binding:"required"`
	Title             string `json:"title" binding:"required"`
	Message           string `json:"message" binding:"required"`
	Type              string `json:"type" binding:"required"`
	RelatedEntityType string `json:"relatedEntityType"`
	RelatedEntityID   int    `json:"relatedEntityId"`
}

// List returns the notifications for the authenticated user. Unauthenticated
// requests fall back to the demo admin identity, matching the sample client.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		userID = 1
	}

	c.JSON(http.StatusOK, h.store.GetNotificationsByUser(userID))
}

// Create stores a new notification for a user
func (h *NotificationHandler) Create(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "details": err.Error()})
		return
	}

	notification := h.store.CreateNotification(model.Notification{
		UserID:            req.UserID,
		Title:             req.Title,
		Message:           req.Message,
		Type:              req.Type,
		RelatedEntityType: req.RelatedEntityType,
		RelatedEntityID:   req.RelatedEntityID,
	})

	c.JSON(http.StatusCreated, notification)
}

// MarkRead flags a notification as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}

	if !h.store.MarkNotificationRead(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.Status(http.StatusNoContent)
}
