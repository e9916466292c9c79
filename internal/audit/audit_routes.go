package audit

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, authorize func(resource, action string) gin.HandlerFunc) {
	logs := rg.Group("/logs")
	{
		logs.GET("", authorize("logs", "read"), h.List)
	}
}
