package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/foliocraft/backend/config"
	"github.com/foliocraft/backend/internal/api"
	"github.com/foliocraft/backend/internal/database"
	"github.com/foliocraft/backend/internal/middleware"
	"github.com/foliocraft/backend/internal/router"
	"github.com/foliocraft/backend/internal/server"
	"github.com/foliocraft/backend/internal/service"
	"github.com/foliocraft/backend/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	if redisClient == nil {
		log.Println("Redis not configured, rate limiting disabled")
	}

	var store storage.Store
	if cfg.S3Bucket != "" {
		store, err = storage.NewS3Store(context.Background(), cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
	} else {
		store, err = storage.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
	}

	authService := service.NewAuthService(db, cfg.JWTSecret, service.NewEmailService())
	analyticsService := service.NewAnalyticsService(db)

	handlers := router.Handlers{
		Auth:        api.NewAuthHandler(authService),
		User:        api.NewUserHandler(service.NewProfileService(db), analyticsService),
		Project:     api.NewProjectHandler(service.NewProjectService(db), analyticsService),
		Skill:       api.NewSkillHandler(service.NewSkillService(db)),
		Timeline:    api.NewTimelineHandler(service.NewTimelineService(db)),
		Testimonial: api.NewTestimonialHandler(service.NewTestimonialService(db)),
		Blog:        api.NewBlogHandler(service.NewBlogService(db)),
		Analytics:   api.NewAnalyticsHandler(analyticsService),
		Upload:      api.NewUploadHandler(service.NewUploadService(store)),
		Contact:     api.NewContactHandler(service.NewMessageService(db, analyticsService)),
		Template:    api.NewTemplateHandler(service.NewTemplateService(db)),
	}

	engine := router.Setup(handlers, router.Options{
		AllowedOrigin: cfg.AllowedOrigin,
		Production:    config.IsProduction(),
		AuthGuard:     middleware.AuthGuard(authService, authService),
		UploadLimit:   middleware.NewUploadRateLimiter(redisClient),
		ContactLimit:  middleware.NewContactRateLimiter(redisClient),
	})

	srv := server.New(engine, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s", cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
