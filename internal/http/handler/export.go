package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumebuilder/internal/service"
	"resumebuilder/internal/storage"
)

// CreateExport renders the posted record and stores it in object storage.
//
// @Summary Export a resume
// @Tags exports
// @Accept json
// @Produce json
// @Param record body model.ResumeRecord true "Resume record"
// @Success 201 {object} model.Export
// @Failure 400 {object} errorPayload
// @Router /exports [post]
func CreateExport(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := parseRecord(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		exp, err := svc.Export(c.UserContext(), rec)
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Location("/exports/" + exp.ID)
		return c.Status(fiber.StatusCreated).JSON(exp)
	}
}

// ListExports returns export metadata, newest first.
//
// @Summary List exports
// @Tags exports
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.ExportListResult
// @Router /exports [get]
func ListExports(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

func pathID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// GetExport returns one export's metadata.
//
// @Summary Get export
// @Tags exports
// @Produce json
// @Param id path string true "Export ID"
// @Success 200 {object} model.Export
// @Failure 404 {object} errorPayload
// @Router /exports/{id} [get]
func GetExport(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		exp, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(exp)
	}
}

// DeleteExport removes the stored PDF and its metadata.
//
// @Summary Delete export
// @Tags exports
// @Param id path string true "Export ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /exports/{id} [delete]
func DeleteExport(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DownloadExport redirects to a presigned object storage URL. When the URL
// cannot be signed the PDF is streamed through the API instead.
//
// @Summary Download export
// @Tags exports
// @Produce application/pdf
// @Param id path string true "Export ID"
// @Success 307
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Router /exports/{id}/download [get]
func DownloadExport(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.DownloadURL(c.UserContext(), id)
		if errors.Is(err, service.ErrPresign) {
			return streamExport(c, svc, id)
		}
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Redirect(u, fiber.StatusTemporaryRedirect)
	}
}

func streamExport(c *fiber.Ctx, svc service.ResumeService, id string) error {
	rc, exp, err := svc.Open(c.UserContext(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	c.Set(fiber.HeaderContentType, exp.ContentType)
	c.Set(fiber.HeaderContentDisposition, storage.ContentDisposition("attachment", exp.Filename))
	// fasthttp closes rc once the body is written
	return c.Status(fiber.StatusOK).SendStream(rc, int(exp.Size))
}
