package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/agricert/farmer-certification/docs"
	"github.com/agricert/farmer-certification/internal/api"
	"github.com/agricert/farmer-certification/internal/infrastructure/config"
	"github.com/agricert/farmer-certification/internal/infrastructure/db/postgres"
	redisdb "github.com/agricert/farmer-certification/internal/infrastructure/db/redis"
	"github.com/agricert/farmer-certification/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// @title        Farmer Certification API
// @version      1.0
// @description  Registration, login and certification review for farmer applications.
// @BasePath     /api
//
// @securityDefinitions.apikey  TokenAuth
// @in                          header
// @name                        token
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:    cfg.LogLevel,
		Pretty:   cfg.Env == "development",
		Timezone: cfg.LogTimezone,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to connect to the database")
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("unable to prepare database schema")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("unable to connect to redis")
	}
	defer rdb.Close()

	if cfg.Seed.Enabled {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to hash admin password")
		}
		repo := postgres.NewUserRepository(db)
		if err := repo.EnsureAdmin(ctx, cfg.Seed.AdminEmail, string(hash)); err != nil {
			log.Fatal().Err(err).Msg("unable to seed admin account")
		}
		log.Info().Str("email", cfg.Seed.AdminEmail).Msg("admin account ensured")
	}

	e := api.NewRouter(db, rdb, cfg)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
