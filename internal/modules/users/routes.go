package users

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, requireAuth, userOnly gin.HandlerFunc) {
	rg.POST("/user/register", h.Register)

	user := rg.Group("/user", requireAuth, userOnly)
	{
		user.GET("/profile", h.GetProfile)
		user.PUT("/profile", h.UpdateProfile)

		user.GET("/domains", h.ListDomains)
		user.GET("/domains/:id", h.GetDomain)
		user.PUT("/domains/:id", h.UpdateDomain)
		user.DELETE("/domains/:id", h.DeleteDomain)
	}
}
