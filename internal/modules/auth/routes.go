package auth

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/auth")
	{
		g.POST("/user/login", h.LoginUser)
		g.POST("/user/logout", h.LogoutUser)
		g.POST("/user/forgot-password", h.ForgotPassword)
		g.POST("/user/reset-password", h.ResetPassword)

		g.POST("/admin/login", h.LoginAdmin)
		g.POST("/admin/logout", h.LogoutAdmin)
	}
}
