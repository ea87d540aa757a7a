package main

import (
	"time"

	"product-studio/config"
	"product-studio/database"
	productsapi "product-studio/internal/api/products"
	routes "product-studio/internal/app/http"
	"product-studio/internal/infra/openrouter"
	"product-studio/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	log := logger.Init(logger.Options{Level: config.LOG_LEVEL, Pretty: config.LOG_PRETTY})
	database.InitDB(config.DB_URL)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	generator := openrouter.NewClient(openrouter.Config{
		APIKey:   config.OPENROUTER_API_KEY,
		BaseURL:  config.OPENROUTER_BASE_URL,
		Model:    config.OPENROUTER_MODEL,
		ProxyURL: config.OPENROUTER_PROXY,
	})

	store := productsapi.NewStore(database.DB)
	service := productsapi.NewService(store, generator, log)

	routes.RegisterRoutes(r, routes.Deps{
		Products: productsapi.NewHandler(service),
	})

	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
