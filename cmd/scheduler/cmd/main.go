package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/grpcapp"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/application/service"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/config"
	postgres "github.com/ozzus/trip-scheduler/cmd/scheduler/internal/infrastructures/db/postgres/repo"
	cacheredis "github.com/ozzus/trip-scheduler/cmd/scheduler/internal/infrastructures/db/redis"
	schedtracing "github.com/ozzus/trip-scheduler/cmd/scheduler/internal/infrastructures/db/tracing"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/infrastructures/ics"
	grpcapi "github.com/ozzus/trip-scheduler/cmd/scheduler/internal/transport/grpc"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/wallclock"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
)

const healthInterval = 15 * time.Second

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	tp, err := schedtracing.InitTracer("scheduler", cfg.Jaeger)
	if err != nil {
		log.Fatal("failed to init tracer", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	defaultZone, err := wallclock.LoadDefault(cfg.Timezone.Default)
	if err != nil {
		log.Fatal("invalid default timezone", zap.String("tz", cfg.Timezone.Default), zap.Error(err))
	}

	log.Info("scheduler starting",
		zap.String("grpc_addr", fmt.Sprintf("%s:%d", cfg.GRPC.Host, cfg.GRPC.Port)),
		zap.String("default_tz", defaultZone.String()),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 10*time.Second)
	repo, err := postgres.New(startCtx, cfg.DB.DatabaseURL())
	cancelStart()
	if err != nil {
		log.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer repo.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Warn("failed to close redis client", zap.Error(err))
		}
	}()

	conv := wallclock.New(log, defaultZone)
	schedulingService := service.NewSchedulingService(log, service.Deps{
		Trips:     repo,
		Bookings:  repo,
		Cache:     cacheredis.NewTripCache(redisClient),
		CacheTTL:  cfg.TripCacheTTL,
		Converter: conv,
		Exporter:  ics.NewExporter(conv, cfg.Calendar.UIDDomain),
	})

	app := grpcapp.New(log, cfg.GRPC.Host, cfg.GRPC.Port, cfg.GRPC.Timeout, func(s *grpc.Server) {
		grpcapi.Register(s, log, schedulingService)
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go app.WatchHealth(ctx, healthInterval, map[string]grpcapp.HealthCheck{
		"postgres": repo.Ping,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	})

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		app.Stop()
	case err := <-errCh:
		if err != nil {
			log.Error("gRPC server stopped", zap.Error(err))
		}
	}
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
