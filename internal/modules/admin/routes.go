package admin

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	g := rg.Group("/admin", adminOnly)
	{
		g.POST("/register", h.Register)
		g.GET("/profile", h.GetProfile)
		g.PUT("/profile", h.UpdateProfile)

		g.GET("/admins", h.ListAdmins)
		g.GET("/admins/:id", h.GetAdmin)
		g.PUT("/admins/:id", h.UpdateAdmin)
		g.DELETE("/admins/:id", h.DeleteAdmin)

		g.GET("/domains", h.ListDomains)
		g.GET("/domains/:id", h.GetDomain)
		g.PUT("/domains/:id", h.UpdateDomain)
		g.DELETE("/domains/:id", h.DeleteDomain)

		g.GET("/users", h.ListUsers)
		g.GET("/users/:id", h.GetUser)
		g.PUT("/users/:id", h.UpdateUser)
		g.DELETE("/users/:id", h.DeleteUser)

		g.GET("/tokens/users", h.ListUserTokens)
		g.DELETE("/tokens/users/:id", h.DeleteUserToken)
		g.GET("/tokens/admins", h.ListAdminTokens)
		g.DELETE("/tokens/admins/:id", h.DeleteAdminToken)
	}
}
