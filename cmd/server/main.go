package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/business-admin/internal/config"     // environment config loader
	"github.com/iliyamo/business-admin/internal/handler"    // HTTP handlers
	"github.com/iliyamo/business-admin/internal/middleware" // rate limiting
	"github.com/iliyamo/business-admin/internal/repository" // data access layer
	"github.com/iliyamo/business-admin/internal/router"     // route registration
	"github.com/iliyamo/business-admin/internal/store"      // in-memory entity store
	"github.com/iliyamo/business-admin/internal/upload"     // file upload storage
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}
	cfg := config.Load()

	// The store is the single source of truth for all entities.  It is
	// built once here and handed to every repository; nothing else in
	// the process holds entity state.
	st := store.New()
	clients := repository.NewClientRepo(st)
	services := repository.NewServiceRepo(st)
	projects := repository.NewProjectRepo(st)
	documents := repository.NewDocumentRepo(st)
	contacts := repository.NewContactRepo(st)
	followUps := repository.NewFollowUpRepo(st)
	employees := repository.NewEmployeeRepo(st)
	users := repository.NewUserRepo(st)
	tokens := repository.NewTokenRepo(st)
	analytics := repository.NewAnalyticsRepo(st)

	files, err := upload.NewSaver(cfg.UploadDir)
	if err != nil {
		log.Fatalf("uploads dir: %v", err)
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens, employees), cfg.JWTSecret)

	// The limiter degrades to a no-op when Redis is unreachable.
	limiter := middleware.RateLimit(config.LoadRateLimitConfig(), config.NewRedisClient())

	router.RegisterAPI(e, router.Handlers{
		Clients:   handler.NewClientHandler(clients),
		Services:  handler.NewServiceHandler(services),
		Projects:  handler.NewProjectHandler(projects, documents, files),
		Contacts:  handler.NewContactHandler(contacts),
		FollowUps: handler.NewFollowUpHandler(followUps),
		Employees: handler.NewEmployeeHandler(employees),
		Analytics: handler.NewAnalyticsHandler(analytics),
	}, cfg.JWTSecret, limiter)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
