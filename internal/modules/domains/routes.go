package domains

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, optionalAuth gin.HandlerFunc) {
	front := rg.Group("/front/domains")
	{
		front.POST("", optionalAuth, h.CreateDomain)
		front.GET("", h.ListDomains)
		front.GET("/:id", h.GetDomain)
	}
}
