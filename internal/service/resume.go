// Package service holds the resume use cases: rendering, exporting to object
// storage and driving form sessions.
package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"resumebuilder/internal/model"
	"resumebuilder/internal/render"
	"resumebuilder/internal/repository"
	"resumebuilder/internal/storage"
)

// DownloadName is the file name offered for rendered resumes.
const DownloadName = "resume.pdf"

const tracerName = "resumebuilder/internal/service"

// Renderer lays out a record and serializes it as PDF.
type Renderer interface {
	Render(ctx context.Context, rec model.ResumeRecord) (*render.Document, error)
}

// ExportListResult is the service-level DTO for paginated exports.
type ExportListResult struct {
	Items []model.Export `json:"data"`
	Total int            `json:"total"`
}

// ResumeService renders resumes and manages exported copies.
type ResumeService interface {
	// Preview validates and renders rec.
	Preview(ctx context.Context, rec model.ResumeRecord) (*render.Document, error)

	// Export renders rec, uploads the PDF and records its metadata. The
	// uploaded object is removed again if the metadata cannot be saved.
	// The returned export carries a presigned DownloadURL.
	Export(ctx context.Context, rec model.ResumeRecord) (*model.Export, error)

	List(ctx context.Context, limit, offset int) (*ExportListResult, error)
	Get(ctx context.Context, id string) (*model.Export, error)
	Delete(ctx context.Context, id string) error

	// DownloadURL returns a presigned URL serving the export as an attachment.
	// Signing failures are reported as ErrPresign.
	DownloadURL(ctx context.Context, id string) (string, error)

	// Open streams the stored PDF of an export. The caller closes the reader.
	Open(ctx context.Context, id string) (io.ReadCloser, *model.Export, error)
}

type resumeService struct {
	renderer Renderer
	store    storage.Storage
	repo     repository.ExportRepository
	expiry   time.Duration
	metrics  *Metrics
	logger   *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

// Option configures the resume service.
type Option func(*resumeService)

// WithExports enables Export and the export lookups. Presigned URLs stay
// valid for expiry.
func WithExports(store storage.Storage, repo repository.ExportRepository, expiry time.Duration) Option {
	return func(s *resumeService) {
		s.store, s.repo, s.expiry = store, repo, expiry
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *resumeService) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *resumeService) { s.logger = l }
}

// NewResumeService constructs a ResumeService. Without WithExports every
// export operation returns ErrExportsDisabled.
func NewResumeService(r Renderer, opts ...Option) ResumeService {
	s := &resumeService{
		renderer: r,
		expiry:   15 * time.Minute,
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *resumeService) exportsEnabled() bool {
	return s.store != nil && s.repo != nil
}

func (s *resumeService) Preview(ctx context.Context, rec model.ResumeRecord) (*render.Document, error) {
	ctx, span := s.tracer.Start(ctx, "resume.render")
	defer span.End()

	if err := model.ValidateRecord(rec); err != nil {
		span.SetStatus(codes.Error, "invalid record")
		return nil, err
	}

	start := time.Now()
	doc, err := s.renderer.Render(ctx, rec)
	if err != nil {
		s.metrics.observe(start, 0, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	s.metrics.observe(start, doc.Pages, nil)
	span.SetAttributes(
		attribute.Int("resume.pages", doc.Pages),
		attribute.Int("resume.bytes", len(doc.Bytes)),
	)
	return doc, nil
}

func (s *resumeService) Export(ctx context.Context, rec model.ResumeRecord) (*model.Export, error) {
	if !s.exportsEnabled() {
		return nil, ErrExportsDisabled
	}
	ctx, span := s.tracer.Start(ctx, "resume.export")
	defer span.End()

	doc, err := s.Preview(ctx, rec)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	key := path.Join("resumes", id+".pdf")

	obj, err := s.store.Put(ctx, key, bytes.NewReader(doc.Bytes), storage.PutObjectOptions{
		Size:        int64(len(doc.Bytes)),
		ContentType: render.ContentType,
		Metadata:    map[string]string{storage.MetaDownloadName: DownloadName},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upload failed")
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	exp := &model.Export{
		ID:          id,
		Filename:    DownloadName,
		StoragePath: obj.Key,
		Size:        obj.Size,
		Pages:       doc.Pages,
		ContentType: render.ContentType,
		CreatedAt:   s.now(),
	}
	stored, err := s.repo.Create(ctx, exp)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "db save failed")
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.logger.ErrorContext(ctx, "export rollback failed",
				slog.String("storage_path", key),
				slog.String("error", delErr.Error()),
			)
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	span.SetAttributes(attribute.String("export.id", stored.ID))

	// The export is stored at this point; a presign failure only costs the
	// convenience URL.
	if u, err := s.store.PresignGet(ctx, stored.StoragePath, stored.Filename, s.expiry); err != nil {
		s.logger.WarnContext(ctx, "presign after export failed",
			slog.String("export_id", stored.ID),
			slog.String("error", err.Error()),
		)
	} else {
		stored.DownloadURL = u
	}
	return stored, nil
}

func (s *resumeService) List(ctx context.Context, limit, offset int) (*ExportListResult, error) {
	if !s.exportsEnabled() {
		return nil, ErrExportsDisabled
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ExportListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *resumeService) Get(ctx context.Context, id string) (*model.Export, error) {
	if !s.exportsEnabled() {
		return nil, ErrExportsDisabled
	}
	if id == "" {
		return nil, ErrIDRequired
	}
	exp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return exp, nil
}

// Delete removes the stored object first and keeps the row if that fails,
// so the object is never orphaned.
func (s *resumeService) Delete(ctx context.Context, id string) error {
	exp, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, exp.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

func (s *resumeService) DownloadURL(ctx context.Context, id string) (string, error) {
	exp, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	u, err := s.store.PresignGet(ctx, exp.StoragePath, exp.Filename, s.expiry)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPresign, err)
	}
	return u, nil
}

func (s *resumeService) Open(ctx context.Context, id string) (io.ReadCloser, *model.Export, error) {
	exp, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, info, err := s.store.Get(ctx, exp.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read storage: %w", err)
	}
	if info.Size > 0 {
		exp.Size = info.Size
	}
	return rc, exp, nil
}
