package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/http/middleware"
	"resumebuilder/internal/service"
)

// Services bundles the use cases the routes delegate to.
type Services struct {
	Resumes service.ResumeService
	Forms   service.FormService
	// Exports registers the /exports routes.
	Exports bool
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. db may be
// nil when exports are disabled.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	resumes := app.Group("/resumes", middleware.NoStore())
	resumes.Post("/preview", PreviewResume(svc.Resumes))
	resumes.Post("/download", DownloadResume(svc.Resumes))

	forms := app.Group("/forms", middleware.NoStore())
	forms.Post("/", CreateForm(svc.Forms))
	forms.Get("/:id", GetForm(svc.Forms))
	forms.Patch("/:id", ApplyFormChange(svc.Forms))
	forms.Delete("/:id", DeleteForm(svc.Forms))
	// Registered before /:id/:section so "submit" is not read as a section.
	forms.Post("/:id/submit", SubmitForm(svc.Forms))
	forms.Post("/:id/:section", AddFormEntry(svc.Forms))
	forms.Put("/:id/:section/:index", UpdateFormEntry(svc.Forms))
	forms.Delete("/:id/:section/:index", RemoveFormEntry(svc.Forms))

	if !svc.Exports {
		return
	}
	exports := app.Group("/exports")
	exports.Post("/", CreateExport(svc.Resumes))
	exports.Get("/", ListExports(svc.Resumes))
	exports.Get("/:id", GetExport(svc.Resumes))
	exports.Delete("/:id", DeleteExport(svc.Resumes))
	exports.Get("/:id/download", DownloadExport(svc.Resumes))
}
