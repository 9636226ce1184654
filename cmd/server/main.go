package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/infinitechange/coaching-site/internal/api"
	"github.com/infinitechange/coaching-site/internal/core/ports"
	"github.com/infinitechange/coaching-site/internal/core/service"
	"github.com/infinitechange/coaching-site/internal/core/token"
	"github.com/infinitechange/coaching-site/internal/infrastructure/config"
	"github.com/infinitechange/coaching-site/internal/infrastructure/db/sqlite"
	"github.com/infinitechange/coaching-site/internal/infrastructure/mail"
	"github.com/infinitechange/coaching-site/internal/infrastructure/sheets"
	"github.com/infinitechange/coaching-site/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("load configuration")
	}

	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})
	log := logger.Get()

	db, err := sqlite.Connect(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("connect database")
	}
	defer func() {
		if err := sqlite.Close(db); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		codec := token.NewCodec(cfg.JWTSecret, 0)
		auth := service.NewAuthService(sqlite.NewUserRepository(db), codec, log)
		if err := auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("seed admin account")
		}
	}

	mailer := mail.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)

	var subscribers ports.SubscriberLog
	subscribers, err = sheets.New(ctx, cfg.Sheets.ClientEmail, cfg.Sheets.PrivateKey, cfg.Sheets.SpreadsheetID)
	if err != nil {
		log.Fatal().Err(err).Msg("connect subscriber sheet")
	}

	e := api.NewRouter(cfg, db, log, mailer, subscribers)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
