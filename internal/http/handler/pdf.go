package handler

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"pdfqa/internal/llm"
	"pdfqa/internal/repository"
	"pdfqa/internal/service"
)

// MaxUploadBytes caps uploaded PDFs at 5 MiB. The payload is buffered in
// full before the check, so the limit also bounds per-request memory. The
// Fiber body limit must sit above this so the handler makes the call.
const MaxUploadBytes = 5 << 20

// askRequest is the JSON body of the ask endpoint.
type askRequest struct {
	Message string `json:"message"`
}

// UploadPDF handles multipart PDF uploads (field name: file).
func UploadPDF(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		// Weak type check on the filename only; the extractor rejects
		// payloads that are not actually PDFs.
		if !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
			return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "only PDF files are supported")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_READ_ERROR", "cannot read uploaded file")
		}
		if len(data) > MaxUploadBytes {
			return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the 5 MiB limit")
		}

		doc, err := svc.Upload(c.UserContext(), data, fh.Filename)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrEmptyUpload):
				return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is empty")
			case errors.Is(err, service.ErrExtractionFailed):
				return writeError(c, fiber.StatusInternalServerError, "EXTRACTION_FAILED", "could not extract text from the PDF")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}

		return c.JSON(fiber.Map{"pdf_id": doc.PDFID})
	}
}

// AskPDF handles questions about a previously uploaded document.
func AskPDF(svc service.PDFService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pdfID := c.Params("pdf_id")

		var body askRequest
		if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.Message) == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_REQUEST_BODY", "message is required")
		}

		answer, err := svc.Ask(c.UserContext(), pdfID, body.Message)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			case errors.Is(err, llm.ErrInvalidInput):
				return writeError(c, fiber.StatusBadRequest, "INVALID_PROVIDER_INPUT", "the provider rejected the request")
			case errors.Is(err, llm.ErrQuotaExhausted):
				return writeError(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "provider quota exhausted, retry later")
			case errors.Is(err, llm.ErrDeadlineExceeded):
				return writeError(c, fiber.StatusGatewayTimeout, "PROVIDER_TIMEOUT", "the provider did not answer in time")
			case errors.Is(err, llm.ErrUnavailable):
				return writeError(c, fiber.StatusServiceUnavailable, "PROVIDER_UNAVAILABLE", "the provider is unavailable")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}

		return c.JSON(fiber.Map{"response": answer})
	}
}

// HealthCheck reports dependency health. A down answer store is reported as
// degraded, not failing: uploads and asks still work through the filesystem
// tier, so the process stays in rotation.
func HealthCheck(rdb redis.Cmdable) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		status := "healthy"
		redisState := "up"
		if err := rdb.Ping(ctx).Err(); err != nil {
			status = "degraded"
			redisState = "down"
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": status,
			"redis":  redisState,
		})
	}
}

// LivenessProbe is an unconditional liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
