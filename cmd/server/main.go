package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/mkarimi-dev/employee-leave-api/internal/auth"
	"github.com/mkarimi-dev/employee-leave-api/internal/config"
	"github.com/mkarimi-dev/employee-leave-api/internal/database"
	"github.com/mkarimi-dev/employee-leave-api/internal/handler"
	"github.com/mkarimi-dev/employee-leave-api/internal/middleware"
	"github.com/mkarimi-dev/employee-leave-api/internal/queue"
	"github.com/mkarimi-dev/employee-leave-api/internal/repository"
	"github.com/mkarimi-dev/employee-leave-api/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env wins
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	userRepo := repository.NewUserRepo(db)
	leaveRepo := repository.NewLeaveRepo(db)

	users := handler.NewUserHandler(userRepo, hasher, tokens)
	leaves := handler.NewLeaveHandler(leaveRepo, userRepo, cfg.StrictLeaveValidation, queue.PublishLeaveRecorded)

	// Audit consumer keeps retrying in the background; the API does
	// not depend on the broker being up.
	go func() {
		if err := queue.StartLeaveConsumer(); err != nil {
			log.Printf("leave consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	if rdb := config.NewRedisClient(); rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	} else {
		log.Printf("redis unavailable; rate limiting disabled")
	}
	router.RegisterRoutes(e, users, leaves, tokens)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
