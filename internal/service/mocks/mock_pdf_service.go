package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pdfqa/internal/model"
)

type MockPDFService struct {
	mock.Mock
}

func (m *MockPDFService) Upload(ctx context.Context, data []byte, filename string) (*model.Document, error) {
	args := m.Called(ctx, data, filename)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockPDFService) Ask(ctx context.Context, pdfID, question string) (string, error) {
	args := m.Called(ctx, pdfID, question)
	return args.String(0), args.Error(1)
}
