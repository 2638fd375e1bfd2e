package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"taskplanner_backend/internal/app/router"
	authadapters "taskplanner_backend/internal/feature/auth/adapters"
	authhandler "taskplanner_backend/internal/feature/auth/transport/handler"
	authusecase "taskplanner_backend/internal/feature/auth/usecase"
	taskadapters "taskplanner_backend/internal/feature/task/adapters"
	taskhandler "taskplanner_backend/internal/feature/task/transport/handler"
	taskusecase "taskplanner_backend/internal/feature/task/usecase"
	"taskplanner_backend/internal/platform/config"
	infradb "taskplanner_backend/internal/platform/db"
	jwtmw "taskplanner_backend/internal/platform/jwt"
	"taskplanner_backend/internal/shared/ratelimiter"
)

func main() {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	// db
	db := infradb.OpenDB()

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	taskRepo := taskadapters.NewTaskMySQL(db)
	userDir := taskadapters.NewUserDirectory(db)

	// Usecase
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	taskUC := taskusecase.NewTaskUsecase(taskRepo, userDir, cfg.FrontURL)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	taskH := taskhandler.NewTaskHandler(taskUC)

	// Credential endpoints share one fixed-window limiter
	authLimiter := ratelimiter.New(10, time.Minute)

	r := router.NewRouter(authH, taskH, authLimiter)

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
