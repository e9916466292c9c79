package report

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, authorize func(resource, action string) gin.HandlerFunc) {
	reports := rg.Group("/reports")
	{
		reports.GET("/:serviceName", authorize("reports", "export"), h.Download)
	}
}
