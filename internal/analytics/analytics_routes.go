package analytics

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, authorize func(resource, action string) gin.HandlerFunc) {
	analytics := rg.Group("/analytics")
	{
		analytics.GET("", authorize("analytics", "read"), h.Overview)
		analytics.GET("/:serviceName", authorize("analytics", "read"), h.Detailed)
	}

	// The grouped view reads attendance data, so it lives under that prefix
	// and carries that resource's policy.
	rg.GET("/attendances/grouped", authorize("attendance", "read"), h.Grouped)
}
