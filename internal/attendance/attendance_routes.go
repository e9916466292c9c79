package attendance

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, authorize func(resource, action string) gin.HandlerFunc, idempotent gin.HandlerFunc) {
	attendances := rg.Group("/attendances")
	{
		attendances.POST("", authorize("attendance", "create"), idempotent, h.Add)
		attendances.GET("/services", authorize("attendance", "read"), h.ListServices)
		attendances.DELETE("/services/:serviceName", authorize("attendance", "delete"), idempotent, h.DeleteService)
	}
}
