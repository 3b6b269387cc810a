package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/rs/zerolog/log"

	"assignment_backend/internals/configs"
	database "assignment_backend/internals/databases"
	assignmentModel "assignment_backend/internals/features/classwork/assignments/model"
	assignmentRepo "assignment_backend/internals/features/classwork/assignments/repository"
	submissionModel "assignment_backend/internals/features/classwork/submissions/model"
	submissionRepo "assignment_backend/internals/features/classwork/submissions/repository"
	"assignment_backend/internals/features/users/auth/service"
	helper "assignment_backend/internals/helpers"
	middlewares "assignment_backend/internals/middlewares"
	routes "assignment_backend/internals/route"
	"assignment_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()
	configs.SetupLogger(cfg.LogLevel, cfg.LogFormat)

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	middlewares.SetupMiddlewares(app, cfg)

	// 🔌 store connect
	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	h, err := database.Connect(bootCtx, cfg)
	if err != nil {
		cancelBoot()
		log.Fatal().Err(err).Msg("❌ store connection failed")
	}
	if cfg.AutoMigrate {
		if err := h.Migrate(&assignmentModel.AssignmentModel{}, &submissionModel.SubmissionModel{}); err != nil {
			log.Fatal().Err(err).Msg("❌ auto-migrate failed")
		}
	}

	assignments := assignmentRepo.New(h)
	submissions := submissionRepo.New(h)
	seeds.RunAllSeeds(bootCtx, assignments, cfg.SeedFile)
	cancelBoot()

	// ✅ Routes
	routes.SetupRoutes(app, routes.Deps{
		Tokens:         service.NewTokenService(cfg.JWTSecret),
		Assignments:    assignments,
		Submissions:    submissions,
		Pinger:         h,
		Production:     cfg.Production,
		GuardWrites:    cfg.GuardWrites,
		TokenRateLimit: cfg.TokenRateLimit,
		Environment:    configs.GetEnv("RAILWAY_ENVIRONMENT", configs.GetEnv("APP_ENV", "development")),
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", h.Driver).Msg("✅ Listening")
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown + tutup koneksi store
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if err := h.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("store close")
	}
	log.Info().Msg("👋 bye")
}
