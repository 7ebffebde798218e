// Package main wires the HTTP server of the release notes webhook.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"release-notes-webhook/config"
	"release-notes-webhook/internal/devops/azure"
	"release-notes-webhook/internal/repository"
	"release-notes-webhook/internal/transport/http/middleware"
	"release-notes-webhook/internal/transport/http/server/handlers-fiber"
	"release-notes-webhook/internal/usecase"
	"release-notes-webhook/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	repo, err := repository.New(ctx, cfg.Storage.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err, "backend", cfg.Storage.Backend)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	conn := azure.NewConnection(log, &cfg.DevOps)
	uc := usecase.New(log, repo, conn, cfg)

	serv := fiber.New(handlers_fiber.AppConfig(cfg.HTTP.RequestTimeout))
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	handlers_fiber.RegisterHandlers(serv, h)

	go func() {
		log.Infow("listening", "addr", cfg.ServerAddr(), "storage", cfg.Storage.Backend, "project", cfg.DevOps.ProjectName)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
