// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"time"

	"release-notes-webhook/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the release-notes trigger and read-back routes.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("http"),
		uc:  usecase,
	}
}

// AppConfig is the fiber configuration the routes expect. Paths are unescaped before
// routing so :name params carry release names as published.
func AppConfig(requestTimeout time.Duration) fiber.Config {
	return fiber.Config{
		ReadTimeout:  requestTimeout,
		WriteTimeout: requestTimeout,
		UnescapePath: true,
	}
}

// RegisterHandlers mounts every route of h on router.
func RegisterHandlers(router fiber.Router, h *Handler) {
	router.Get("/api/ReleaseNotesWebhook", h.ReleaseNotesWebhook)
	router.Post("/api/ReleaseNotesWebhook", h.ReleaseNotesWebhook)
	router.Get("/api/releases/latest", h.GetLatestRelease)
	// Head goes first: Get also answers HEAD.
	router.Head("/api/releases/named/:name", h.HeadRelease)
	router.Get("/api/releases/named/:name", h.GetRelease)
}
