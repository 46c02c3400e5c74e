package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"resumebuilder/internal/form"
	"resumebuilder/internal/render"
)

// FormService drives form sessions and submits them for rendering.
type FormService interface {
	// Create opens a session holding the default form.
	Create(ctx context.Context) (*form.Form, error)
	Get(ctx context.Context, id string) (*form.Form, error)
	// Apply performs one change against the session atomically.
	Apply(ctx context.Context, id string, c form.Change) (*form.Form, error)
	Delete(ctx context.Context, id string) error
	// Submit renders the session's current values. The session is kept.
	Submit(ctx context.Context, id string) (*render.Document, error)
}

type formService struct {
	store  form.Store
	resume ResumeService
}

// NewFormService constructs a FormService rendering through resume.
func NewFormService(store form.Store, resume ResumeService) FormService {
	return &formService{store: store, resume: resume}
}

func (s *formService) Create(ctx context.Context) (*form.Form, error) {
	f := form.New(uuid.New().String())
	if err := s.store.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return f, nil
}

func (s *formService) Get(ctx context.Context, id string) (*form.Form, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	return s.store.Get(ctx, id)
}

func (s *formService) Apply(ctx context.Context, id string, c form.Change) (*form.Form, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	return s.store.Update(ctx, id, func(f *form.Form) error {
		return f.Apply(c)
	})
}

func (s *formService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.store.Delete(ctx, id)
}

func (s *formService) Submit(ctx context.Context, id string) (*render.Document, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rec, err := f.Submit()
	if err != nil {
		return nil, err
	}
	return s.resume.Preview(ctx, rec)
}
