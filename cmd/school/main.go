package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"hjss/swim-school/internal/app"
	"hjss/swim-school/internal/config"
	"hjss/swim-school/internal/console"
	"hjss/swim-school/internal/repository/sqlite"
	"hjss/swim-school/internal/seed"
	"hjss/swim-school/internal/service"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log.Env)
	defer logger.Sync() //nolint:errcheck

	// --- Database ---
	db, err := sqlite.Open(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("could not open database", zap.Error(err))
	}
	logger.Info("database ready", zap.String("dsn", cfg.Database.DSN))

	// --- Repositories ---
	coachRepo := sqlite.NewCoachRepository(db)
	learnerRepo := sqlite.NewLearnerRepository(db)
	lessonRepo := sqlite.NewLessonRepository(db)
	bookingRepo := sqlite.NewBookingRepository(db)
	reviewRepo := sqlite.NewReviewRepository(db)

	// --- Services ---
	timetableService := service.NewTimetableService(lessonRepo)
	bookingService := service.NewBookingService(learnerRepo, lessonRepo, bookingRepo, reviewRepo, logger)
	learnerService := service.NewLearnerService(learnerRepo, logger)
	reportService := service.NewReportService(coachRepo, lessonRepo, learnerRepo, bookingRepo, reviewRepo)

	ctx := context.Background()

	// --- Seed Data ---
	if cfg.Seed.Enabled {
		seeder := seed.New(coachRepo, lessonRepo, learnerRepo, bookingRepo, reviewRepo, logger)
		if err := seeder.Run(ctx, cfg.Seed.Weeks, cfg.Seed.Capacity); err != nil {
			logger.Fatal("could not seed data", zap.Error(err))
		}
	}

	// --- Console Session ---
	ui := console.New(timetableService, bookingService, learnerService, reportService, os.Stdin, os.Stdout)
	if err := ui.Run(ctx); err != nil {
		logger.Fatal("console session failed", zap.Error(err))
	}

	logger.Info("session ended")
}
