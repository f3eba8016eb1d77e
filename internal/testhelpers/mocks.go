package testhelpers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockObjectStore is a mock implementation of the export object store
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) PutObject(ctx context.Context, objectKey string, body []byte, contentType string) error {
	args := m.Called(ctx, objectKey, body, contentType)
	return args.Error(0)
}

func (m *MockObjectStore) GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiration)
	return args.String(0), args.Error(1)
}
