package alloweduser

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, h *Handler, authorize func(resource, action string) gin.HandlerFunc, idempotent gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.GET("", authorize("users", "read"), h.List)
		users.POST("", authorize("users", "create"), idempotent, h.Add)
		users.PATCH("/:email/role", authorize("users", "update"), idempotent, h.UpdateRole)
		users.DELETE("/:email", authorize("users", "delete"), idempotent, h.Remove)
	}
}
