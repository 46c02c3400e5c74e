package handler

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/model"
	"resumebuilder/internal/render"
	"resumebuilder/internal/service"
	"resumebuilder/internal/storage"
)

// PagesHeader carries the page count of a rendered resume.
const PagesHeader = "X-Resume-Pages"

// parseRecord validates the request body against the record schema before
// decoding it.
func parseRecord(c *fiber.Ctx) (model.ResumeRecord, error) {
	var rec model.ResumeRecord
	body := c.Body()
	if err := model.ValidateJSON(body); err != nil {
		return rec, err
	}
	if err := json.Unmarshal(body, &rec); err != nil {
		return rec, fmt.Errorf("%w: %v", model.ErrInvalidRecord, err)
	}
	return rec, nil
}

func sendPDF(c *fiber.Ctx, doc *render.Document, disposition string) error {
	c.Set(fiber.HeaderContentType, render.ContentType)
	c.Set(fiber.HeaderContentDisposition, storage.ContentDisposition(disposition, service.DownloadName))
	c.Set(PagesHeader, strconv.Itoa(doc.Pages))
	return c.Status(fiber.StatusOK).Send(doc.Bytes)
}

func renderRecord(svc service.ResumeService, disposition string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := parseRecord(c)
		if err != nil {
			return writeServiceError(c, err)
		}
		doc, err := svc.Preview(c.UserContext(), rec)
		if err != nil {
			return writeServiceError(c, err)
		}
		return sendPDF(c, doc, disposition)
	}
}

// PreviewResume renders the posted record and returns the PDF inline.
//
// @Summary Preview a resume
// @Tags resumes
// @Accept json
// @Produce application/pdf
// @Param record body model.ResumeRecord true "Resume record"
// @Success 200 {file} binary
// @Failure 400 {object} errorPayload
// @Router /resumes/preview [post]
func PreviewResume(svc service.ResumeService) fiber.Handler {
	return renderRecord(svc, "inline")
}

// DownloadResume renders the posted record as a resume.pdf attachment.
//
// @Summary Download a resume
// @Tags resumes
// @Accept json
// @Produce application/pdf
// @Param record body model.ResumeRecord true "Resume record"
// @Success 200 {file} binary
// @Failure 400 {object} errorPayload
// @Router /resumes/download [post]
func DownloadResume(svc service.ResumeService) fiber.Handler {
	return renderRecord(svc, "attachment")
}
