package routes

import (
	authapi "product-studio/internal/api/auth"
	productsapi "product-studio/internal/api/products"
	usersapi "product-studio/internal/api/users"
	"product-studio/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps carries the request-path handlers that are built with injected
// collaborators instead of ambient globals.
type Deps struct {
	Products *productsapi.Handler
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", authapi.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.POST("/upgrade-request", usersapi.RequestUpgrade)

	auth.POST("/products", deps.Products.Create)
	auth.GET("/products", deps.Products.List)
	auth.GET("/products/:id", deps.Products.Get)
	auth.DELETE("/products/:id", deps.Products.Delete)
}
