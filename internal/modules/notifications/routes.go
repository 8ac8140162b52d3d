package notifications

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the REST feed under an authenticated group. The
// caller supplies the role guards so route wiring stays in one place.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminOnly, userOnly gin.HandlerFunc) {
	rg.GET("/admin/notifications", adminOnly, h.GetAdminNotifications)
	rg.DELETE("/admin/notifications", adminOnly, h.DeleteAdminNotifications)

	rg.GET("/user/notifications", userOnly, h.GetUserNotifications)
	rg.DELETE("/user/notifications", userOnly, h.DeleteUserNotifications)

	rg.PUT("/notifications/:id/read", h.ReadNotification)
}
