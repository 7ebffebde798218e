package handlers_fiber

import (
	"errors"
	"net/http"

	"release-notes-webhook/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// ErrorCode is the machine-readable part of an error response.
type ErrorCode string

const (
	CONFIGURATIONERROR ErrorCode = "CONFIGURATION_ERROR"
	REPOSITORYNOTFOUND ErrorCode = "REPOSITORY_NOT_FOUND"
	BACKENDFAILURE     ErrorCode = "BACKEND_FAILURE"
	PERSISTENCEFAILURE ErrorCode = "PERSISTENCE_FAILURE"
	NOTFOUND           ErrorCode = "NOT_FOUND"
	INTERNAL           ErrorCode = "INTERNAL"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := INTERNAL
	msg := err.Error()

	switch {
	case errors.Is(err, entities.ErrBlobNotFound):
		status = http.StatusNotFound
		code = NOTFOUND
		msg = "release notes not found"
	case errors.Is(err, entities.ErrConfiguration):
		code = CONFIGURATIONERROR
	case errors.Is(err, entities.ErrRepositoryNotFound):
		code = REPOSITORYNOTFOUND
	case errors.Is(err, entities.ErrBackendQuery):
		code = BACKENDFAILURE
	case errors.Is(err, entities.ErrPersistence):
		code = PERSISTENCEFAILURE
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code ErrorCode, msg string) ErrorResponse {
	var res ErrorResponse
	res.Error.Code = code
	res.Error.Message = msg
	return res
}
