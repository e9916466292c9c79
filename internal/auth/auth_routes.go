package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public endpoints behind the rate limiter and the
// session endpoints behind authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler, rateLimit, authenticate gin.HandlerFunc) {
	public := rg.Group("/auth")
	public.Use(rateLimit)
	{
		public.POST("/register", h.Register)
		public.POST("/login", h.Login)
		public.POST("/password-reset", h.RequestPasswordReset)
		public.POST("/password-reset/confirm", h.ConfirmPasswordReset)
	}

	session := rg.Group("/auth")
	session.Use(authenticate)
	{
		session.GET("/me", h.Me)
		session.POST("/logout", h.Logout)
	}
}
