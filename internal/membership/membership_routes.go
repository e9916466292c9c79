package membership

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, authorize func(resource, action string) gin.HandlerFunc, idempotent gin.HandlerFunc) {
	members := rg.Group("/members")
	{
		members.GET("", authorize("membership", "read"), h.List)
		members.PATCH("/name", authorize("membership", "update"), idempotent, h.Rename)
		members.PATCH("/category", authorize("membership", "update"), idempotent, h.Recategorize)
		members.POST("/bulk-category", authorize("membership", "update"), idempotent, h.BulkRecategorize)
		members.POST("/import", authorize("membership", "create"), idempotent, h.Import)
	}
}
