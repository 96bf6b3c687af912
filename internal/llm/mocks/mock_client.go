package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Answer(ctx context.Context, docText, question string) (string, error) {
	args := m.Called(ctx, docText, question)
	return args.String(0), args.Error(1)
}
