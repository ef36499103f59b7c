package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jaypeewhat/rooms-sana/config"
	"github.com/jaypeewhat/rooms-sana/database"
	"github.com/jaypeewhat/rooms-sana/logger"
	"github.com/jaypeewhat/rooms-sana/routes"
	"github.com/jaypeewhat/rooms-sana/utils"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		stdlog.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to migrate tables", zap.Error(err))
	}
	if err := database.SeedRooms(db, log); err != nil {
		log.Fatal("failed to seed rooms", zap.Error(err))
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret)
	router := routes.SetupRouter(db, log, tokens)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("failed to close database", zap.Error(err))
		} else {
			log.Info("database connection closed")
		}
	}
}
