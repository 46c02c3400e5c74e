package handler

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/form"
	"resumebuilder/internal/service"
)

// CreateForm opens a form session with the default entries.
//
// @Summary Create form session
// @Tags forms
// @Produce json
// @Success 201 {object} form.Form
// @Router /forms [post]
func CreateForm(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := svc.Create(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Location("/forms/" + f.ID)
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

// GetForm returns the session's current values.
//
// @Summary Get form session
// @Tags forms
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} form.Form
// @Failure 404 {object} errorPayload
// @Router /forms/{id} [get]
func GetForm(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		f, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(f)
	}
}

// ApplyFormChange applies one change document to the session.
//
// @Summary Change form session
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param change body form.Change true "Change"
// @Success 200 {object} form.Form
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /forms/{id} [patch]
func ApplyFormChange(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var ch form.Change
		if err := json.Unmarshal(c.Body(), &ch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_CHANGE", "malformed change document")
		}
		return applyChange(c, svc, id, ch, fiber.StatusOK)
	}
}

// AddFormEntry appends the posted entry (or a blank one) to a section.
//
// @Summary Add section entry
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param section path string true "Section" Enums(experience, education, skills, projects, languages, certifications, hobbies)
// @Success 201 {object} form.Form
// @Failure 400 {object} errorPayload
// @Router /forms/{id}/{section} [post]
func AddFormEntry(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		return applyChange(c, svc, id, form.Change{
			Op:      form.OpAdd,
			Section: form.Section(c.Params("section")),
			Entry:   bodyCopy(c),
		}, fiber.StatusCreated)
	}
}

// UpdateFormEntry replaces the entry at index.
//
// @Summary Replace section entry
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param section path string true "Section"
// @Param index path int true "Entry index"
// @Success 200 {object} form.Form
// @Failure 422 {object} errorPayload
// @Router /forms/{id}/{section}/{index} [put]
func UpdateFormEntry(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		idx, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INDEX", "invalid index")
		}
		return applyChange(c, svc, id, form.Change{
			Op:      form.OpUpdate,
			Section: form.Section(c.Params("section")),
			Index:   form.At(idx),
			Entry:   bodyCopy(c),
		}, fiber.StatusOK)
	}
}

// RemoveFormEntry removes the entry at index; later entries shift down.
//
// @Summary Remove section entry
// @Tags forms
// @Produce json
// @Param id path string true "Session ID"
// @Param section path string true "Section"
// @Param index path int true "Entry index"
// @Success 200 {object} form.Form
// @Failure 422 {object} errorPayload
// @Router /forms/{id}/{section}/{index} [delete]
func RemoveFormEntry(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		idx, err := strconv.Atoi(c.Params("index"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INDEX", "invalid index")
		}
		return applyChange(c, svc, id, form.Change{
			Op:      form.OpRemove,
			Section: form.Section(c.Params("section")),
			Index:   form.At(idx),
		}, fiber.StatusOK)
	}
}

// DeleteForm discards the session.
//
// @Summary Delete form session
// @Tags forms
// @Param id path string true "Session ID"
// @Success 204
// @Router /forms/{id} [delete]
func DeleteForm(svc service.FormService) fiber.Handler {
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

// SubmitForm renders the session. With download=true the PDF is sent as an
// attachment, otherwise inline.
//
// @Summary Submit form session
// @Tags forms
// @Produce application/pdf
// @Param id path string true "Session ID"
// @Param download query bool false "Send as attachment"
// @Success 200 {file} binary
// @Failure 400 {object} errorPayload
// @Router /forms/{id}/submit [post]
func SubmitForm(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Submit(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		disposition := "inline"
		if c.QueryBool("download") {
			disposition = "attachment"
		}
		return sendPDF(c, doc, disposition)
	}
}

func applyChange(c *fiber.Ctx, svc service.FormService, id string, ch form.Change, status int) error {
	f, err := svc.Apply(c.UserContext(), id, ch)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(status).JSON(f)
}

// bodyCopy detaches the request body from fasthttp's reusable buffer.
func bodyCopy(c *fiber.Ctx) json.RawMessage {
	b := c.Body()
	if len(b) == 0 {
		return nil
	}
	return append(json.RawMessage(nil), b...)
}
