package mocks

import (
	"github.com/stretchr/testify/mock"

	"pdfqa/internal/extract"
)

type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(data []byte) (*extract.Result, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extract.Result), args.Error(1)
}
