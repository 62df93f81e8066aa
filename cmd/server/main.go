package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"feedbackboard/internal/auth"
	"feedbackboard/internal/cache"
	"feedbackboard/internal/config"
	"feedbackboard/internal/db"
	"feedbackboard/internal/handler"
	"feedbackboard/internal/repository"
	"feedbackboard/internal/router"
	"feedbackboard/internal/service"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Session layer
	tokenService := auth.NewTokenService(cfg.SessionSecret)
	sessionStore := auth.NewSessionStore(cacheClient)
	sessions := auth.NewSessionManager(tokenService, sessionStore, cfg.CookieSecure)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	feedbackRepo := repository.NewFeedbackRepository(gormDB)

	// Services
	userService := service.NewUserService(userRepo)
	feedbackService := service.NewFeedbackService(feedbackRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(userService, sessions)
	userHandler := handler.NewUserHandler(userService, sessions)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService, userService, sessions)

	router.Register(e, sessions, authHandler, userHandler, feedbackHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
