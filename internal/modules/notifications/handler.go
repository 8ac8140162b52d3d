package notifications

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"domainsmarket/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetAdminNotifications lists the admin feed: GET /admin/notifications.
func (h *Handler) GetAdminNotifications(c *gin.Context) {
	page, limit := pageParams(c)

	list, err := h.service.List(c.Request.Context(), NamespaceAdmin, nil, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get notifications")
		return
	}

	c.JSON(http.StatusOK, list)
}

// DeleteAdminNotifications clears the admin feed: DELETE /admin/notifications.
func (h *Handler) DeleteAdminNotifications(c *gin.Context) {
	deleted, err := h.service.Clear(c.Request.Context(), NamespaceAdmin, nil)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete notifications")
		return
	}

	if deleted == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No admin notifications found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin notifications deleted successfully"})
}

// GetUserNotifications lists the calling user's feed: GET /user/notifications.
func (h *Handler) GetUserNotifications(c *gin.Context) {
	userID := c.GetInt64("user_id")
	page, limit := pageParams(c)

	list, err := h.service.List(c.Request.Context(), NamespaceUser, &userID, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get notifications")
		return
	}

	c.JSON(http.StatusOK, list)
}

// DeleteUserNotifications clears the calling user's feed: DELETE /user/notifications.
func (h *Handler) DeleteUserNotifications(c *gin.Context) {
	userID := c.GetInt64("user_id")

	deleted, err := h.service.Clear(c.Request.Context(), NamespaceUser, &userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete notifications")
		return
	}

	if deleted == 0 {
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("No User id %d notifications found", userID)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User id %d notifications deleted successfully", userID)})
}

// ReadNotification marks one record read: PUT /notifications/:id/read.
func (h *Handler) ReadNotification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid notification ID")
		return
	}

	n, err := h.service.MarkRead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Notification not found"})
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to mark as read")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification marked as read successfully",
		"data":    n,
	})
}

func pageParams(c *gin.Context) (page, limit int) {
	page = 1
	limit = 10
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}
