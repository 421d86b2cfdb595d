package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/atxserves/community-directory/internal/config"
	"github.com/atxserves/community-directory/internal/handler"
	"github.com/atxserves/community-directory/internal/middleware"
	"github.com/atxserves/community-directory/internal/router"
	"github.com/atxserves/community-directory/internal/seed"
	"github.com/atxserves/community-directory/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly
	cfg := config.Load()

	st := store.New()
	if cfg.SeedDemo {
		seed.Load(context.Background(), st)
	}

	e := echo.New()
	e.HideBanner = true

	// Response cache is best effort: with no Redis the middleware is a no-op.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, response cache disabled")
	}
	e.Use(middleware.NewResponseCache(config.LoadCacheConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterDirectory(e, handler.NewDirectoryHandler(cfg, st))
	router.RegisterAlerts(e, handler.NewAlertHandler(st))
	router.RegisterUsers(e, handler.NewUserHandler(cfg, st))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
