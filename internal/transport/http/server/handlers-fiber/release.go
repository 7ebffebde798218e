package handlers_fiber

import (
	"strings"

	"release-notes-webhook/internal/mapper"
	"release-notes-webhook/internal/notes"

	"github.com/gofiber/fiber/v2"
)

const mimeTextMarkdown = "text/markdown; charset=utf-8"

// ReleaseNotesWebhook builds, publishes and returns the release notes for the trigger payload.
func (h *Handler) ReleaseNotesWebhook(c *fiber.Ctx) error {
	// name is accepted for compatibility with existing triggers and only logged.
	if name := c.Query("name"); name != "" {
		h.log.Infow("release notes triggered", "name", name)
	}

	meta := mapper.FromTriggerPayload(c.Body())
	run, err := h.uc.GenerateReleaseNotes(c.Context(), meta)
	if err != nil {
		h.log.Errorw("release notes run failed", "error", err, "release", meta.Name)
		return writeError(c, err)
	}

	for k, v := range mapper.PublishHeaders(run.Publish) {
		c.Set(k, v)
	}
	return h.sendDocument(c, run.Document)
}

// GetLatestRelease returns the document of the most recent run.
func (h *Handler) GetLatestRelease(c *fiber.Ctx) error {
	doc, err := h.uc.LatestReleaseNotes(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return h.sendDocument(c, doc)
}

// GetRelease returns the document published for the release in the :name path param.
func (h *Handler) GetRelease(c *fiber.Ctx) error {
	doc, err := h.uc.ReleaseNotes(c.Context(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return h.sendDocument(c, doc)
}

// HeadRelease reports with the status alone whether a release was published under :name.
func (h *Handler) HeadRelease(c *fiber.Ctx) error {
	ok, err := h.uc.ReleaseExists(c.Context(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handler) sendDocument(c *fiber.Ctx, doc string) error {
	if !wantsHTML(c) {
		c.Set(fiber.HeaderContentType, mimeTextMarkdown)
		return c.Status(fiber.StatusOK).SendString(doc)
	}

	html, err := notes.ToHTML(doc)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(html)
}

func wantsHTML(c *fiber.Ctx) bool {
	if strings.EqualFold(c.Query("format"), "html") {
		return true
	}
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMETextHTML)
}
