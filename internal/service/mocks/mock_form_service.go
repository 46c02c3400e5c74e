package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumebuilder/internal/form"
	"resumebuilder/internal/render"
)

type MockFormService struct {
	mock.Mock
}

func (m *MockFormService) Create(ctx context.Context) (*form.Form, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*form.Form), args.Error(1)
}

func (m *MockFormService) Get(ctx context.Context, id string) (*form.Form, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*form.Form), args.Error(1)
}

func (m *MockFormService) Apply(ctx context.Context, id string, c form.Change) (*form.Form, error) {
	args := m.Called(ctx, id, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*form.Form), args.Error(1)
}

func (m *MockFormService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFormService) Submit(ctx context.Context, id string) (*render.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*render.Document), args.Error(1)
}
