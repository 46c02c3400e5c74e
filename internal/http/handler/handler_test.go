package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resumebuilder/internal/form"
	"resumebuilder/internal/model"
	"resumebuilder/internal/render"
	"resumebuilder/internal/service"
	serviceMocks "resumebuilder/internal/service/mocks"
)

const validBody = `{"name":"Jane Doe","email":"jane@example.com","skills":[{"name":"Go","level":"5"}]}`

var pdfDoc = &render.Document{Bytes: []byte("%PDF-1.3 test"), Pages: 2}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})

	t.Run("no database", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(nil))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPreviewResume(t *testing.T) {
	mockSvc := new(serviceMocks.MockResumeService)
	app := fiber.New()
	app.Post("/resumes/preview", PreviewResume(mockSvc))
	app.Post("/resumes/download", DownloadResume(mockSvc))

	t.Run("inline pdf", func(t *testing.T) {
		mockSvc.On("Preview", mock.Anything, mock.MatchedBy(func(rec model.ResumeRecord) bool {
			return rec.Name == "Jane Doe" && len(rec.Skills) == 1 && rec.Skills[0].Level == "5"
		})).Return(pdfDoc, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/resumes/preview", strings.NewReader(validBody))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Equal(t, `inline; filename="resume.pdf"`, resp.Header.Get("Content-Disposition"))
		assert.Equal(t, "2", resp.Header.Get(PagesHeader))
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, pdfDoc.Bytes, body)
		mockSvc.AssertExpectations(t)
	})

	t.Run("attachment", func(t *testing.T) {
		mockSvc.On("Preview", mock.Anything, mock.Anything).Return(pdfDoc, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/resumes/download", strings.NewReader(validBody))
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, `attachment; filename="resume.pdf"`, resp.Header.Get("Content-Disposition"))
		mockSvc.AssertExpectations(t)
	})

	t.Run("schema violation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/resumes/preview",
			strings.NewReader(`{"name":"Jane","email":"j@x.io","skills":"Go"}`))
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INVALID_RECORD", body.Error.Code)
		assert.Contains(t, body.Error.Message, "skills")
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/resumes/preview", strings.NewReader(`{"name":`))
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_RECORD", decodeError(t, resp).Error.Code)
	})

	t.Run("render failure", func(t *testing.T) {
		mockSvc.On("Preview", mock.Anything, mock.Anything).Return(nil, render.ErrRender).Once()

		req := httptest.NewRequest(http.MethodPost, "/resumes/preview", strings.NewReader(validBody))
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.Equal(t, "internal server error", body.Error.Message)
	})
}

func TestCreateExport(t *testing.T) {
	mockSvc := new(serviceMocks.MockResumeService)
	app := fiber.New()
	app.Post("/exports", CreateExport(mockSvc))

	t.Run("created", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Export", mock.Anything, mock.Anything).
			Return(&model.Export{ID: id, Filename: "resume.pdf", Pages: 1}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/exports", strings.NewReader(validBody))
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/exports/"+id, resp.Header.Get("Location"))

		var result model.Export
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, id, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("disabled", func(t *testing.T) {
		mockSvc.On("Export", mock.Anything, mock.Anything).Return(nil, service.ErrExportsDisabled).Once()

		req := httptest.NewRequest(http.MethodPost, "/exports", strings.NewReader(validBody))
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
		assert.Equal(t, "EXPORTS_DISABLED", decodeError(t, resp).Error.Code)
	})
}

func TestListExports(t *testing.T) {
	mockSvc := new(serviceMocks.MockResumeService)
	app := fiber.New()
	app.Get("/exports", ListExports(mockSvc))

	t.Run("success", func(t *testing.T) {
		expected := &service.ExportListResult{
			Items: []model.Export{{ID: uuid.New().String(), Filename: "resume.pdf"}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, 10, 0).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/exports?limit=10&offset=0", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.ExportListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/exports?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid offset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/exports?offset=x", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 10, 0).Return(nil, errors.New("service error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/exports", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetExport(t *testing.T) {
	mockSvc := new(serviceMocks.MockResumeService)
	app := fiber.New()
	app.Get("/exports/:id", GetExport(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(&model.Export{ID: id}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/exports/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.Export
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, id, result.ID)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/exports/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/exports/invalid-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	mockSvc.AssertExpectations(t)
}

func TestDeleteExport(t *testing.T) {
	mockSvc := new(serviceMocks.MockResumeService)
	app := fiber.New()
	app.Delete("/exports/:id", DeleteExport(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/exports/"+id, nil))
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/exports/"+id, nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(errors.New("delete error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/exports/"+id, nil))
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestDownloadExport(t *testing.T) {
	mockSvc := new(serviceMocks.MockResumeService)
	app := fiber.New()
	app.Get("/exports/:id/download", DownloadExport(mockSvc))

	id := uuid.New().String()
	signed := "http://minio.local/resumes/" + id + ".pdf?X-Amz-Signature=abc"
	mockSvc.On("DownloadURL", mock.Anything, id).Return(signed, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/exports/"+id+"/download", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, signed, resp.Header.Get("Location"))

	t.Run("streams when signing fails", func(t *testing.T) {
		mockSvc.On("DownloadURL", mock.Anything, id).Return("", fmt.Errorf("%w: no credentials", service.ErrPresign)).Once()
		mockSvc.On("Open", mock.Anything, id).Return(
			io.NopCloser(strings.NewReader("%PDF-1.3 stored")),
			&model.Export{ID: id, Filename: "resume.pdf", ContentType: "application/pdf", Size: 15},
			nil,
		).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/exports/"+id+"/download", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Equal(t, `attachment; filename="resume.pdf"`, resp.Header.Get("Content-Disposition"))
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "%PDF-1.3 stored", string(body))
	})

	t.Run("stream fallback for a deleted export", func(t *testing.T) {
		mockSvc.On("DownloadURL", mock.Anything, id).Return("", service.ErrPresign).Once()
		mockSvc.On("Open", mock.Anything, id).Return(nil, nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/exports/"+id+"/download", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	RegisterRoutes(app, nil, Services{
		Resumes: new(serviceMocks.MockResumeService),
		Forms:   new(serviceMocks.MockFormService),
	})

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("exports not registered when disabled", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/exports", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("resume responses are not cached", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/resumes/preview", bytes.NewReader([]byte(`{}`))))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	})
}

func TestRouting_ExportsEnabled(t *testing.T) {
	mockSvc := new(serviceMocks.MockResumeService)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, nil, Services{
		Resumes: mockSvc,
		Forms:   new(serviceMocks.MockFormService),
		Exports: true,
	})

	mockSvc.On("List", mock.Anything, 10, 0).Return(&service.ExportListResult{Items: []model.Export{}}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/exports", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{model.ErrInvalidRecord, http.StatusBadRequest, "INVALID_RECORD"},
		{form.ErrRequiredField, http.StatusBadRequest, "REQUIRED_FIELD"},
		{form.ErrUnknownSection, http.StatusBadRequest, "INVALID_CHANGE"},
		{form.ErrInvalidEntry, http.StatusBadRequest, "INVALID_CHANGE"},
		{form.ErrIndexRequired, http.StatusBadRequest, "INVALID_CHANGE"},
		{form.ErrIndexOutOfRange, http.StatusUnprocessableEntity, "INDEX_OUT_OF_RANGE"},
		{form.ErrSessionNotFound, http.StatusNotFound, "NOT_FOUND"},
		{service.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{service.ErrIDRequired, http.StatusBadRequest, "INVALID_ID"},
		{service.ErrExportsDisabled, http.StatusNotImplemented, "EXPORTS_DISABLED"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code+"/"+tt.err.Error(), func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return writeServiceError(c, tt.err) })

			resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, decodeError(t, resp).Error.Code)
		})
	}
}
