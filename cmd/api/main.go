package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contaplena/site-api/internal/config"
	"github.com/contaplena/site-api/internal/handlers"
	"github.com/contaplena/site-api/internal/logging"
	"github.com/contaplena/site-api/internal/middleware"
	"github.com/contaplena/site-api/internal/observability"
	"github.com/contaplena/site-api/internal/services"
	"github.com/contaplena/site-api/internal/utils/httpclient"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/contaplena/site-api/docs"
)

// @title           Conta Plena Site API
// @version         1.0
// @description     API do site institucional: catálogo de CNAEs com classificação MEI/Fator R, formulário de contato, blog e consulta de subclasses na base do IBGE.

// @contact.name   API Support
// @contact.email  contato@contaplena.com.br

// @host      localhost:8080
// @BasePath  /

// @tag.name cnae
// @tag.description Operações do catálogo de CNAEs

// @tag.name contact
// @tag.description Formulário de contato

// @tag.name blog
// @tag.description Posts do blog

// @tag.name health
// @tag.description Verificação de saúde

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize database connections
	config.InitMongoDB()
	config.InitRedis()

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Services
	httpPool := httpclient.NewHTTPClientPool(10, config.AppConfig.IBGETimeout)
	defer httpPool.Close()

	cnaeService := services.NewCNAEService(config.MongoDB, config.Redis, logging.Logger)
	contactService := services.NewContactService(config.MongoDB, logging.Logger)
	blogService := services.NewBlogService(config.MongoDB, config.Redis, logging.Logger)
	ibgeService := services.NewIBGEService(config.AppConfig.IBGEBaseURL, httpPool, logging.Logger)

	// Handlers
	cnaeHandlers := handlers.NewCNAEHandlers(cnaeService, ibgeService, logging.Logger)
	contactHandlers := handlers.NewContactHandlers(contactService, logging.Logger)
	blogHandlers := handlers.NewBlogHandlers(blogService, logging.Logger)

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTiming(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/health", handlers.HealthCheck)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/cnae/search", cnaeHandlers.SearchCNAE)
		api.GET("/cnae", cnaeHandlers.ListCNAE)
		api.POST("/cnae", cnaeHandlers.CreateCNAE)
		api.GET("/cnae/init", cnaeHandlers.InitCNAE)
		api.GET("/cnae/:code/details", cnaeHandlers.GetCNAEDetails)

		api.POST("/contact", contactHandlers.CreateSubmission)

		api.GET("/blog", blogHandlers.ListPosts)
		api.GET("/blog/:slug", blogHandlers.GetPostBySlug)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
