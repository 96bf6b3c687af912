package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pdfqa/internal/model"
	"pdfqa/internal/repository"
)

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Save(ctx context.Context, doc *model.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentStore) Fetch(ctx context.Context, pdfID string) (*model.Document, error) {
	args := m.Called(ctx, pdfID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

type MockAnswerCache struct {
	mock.Mock
}

func (m *MockAnswerCache) GetAnswer(ctx context.Context, pdfID, question string) (string, repository.CacheResult) {
	args := m.Called(ctx, pdfID, question)
	return args.String(0), args.Get(1).(repository.CacheResult)
}

func (m *MockAnswerCache) PutAnswer(ctx context.Context, pdfID, question, answer string) error {
	args := m.Called(ctx, pdfID, question, answer)
	return args.Error(0)
}
