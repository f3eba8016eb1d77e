package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-genie/backend/internal/types"
)

// MockSessionService is a mock implementation of the session service
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) IssueSession() (*types.SessionResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SessionResponse), args.Error(1)
}

func (m *MockSessionService) ValidateToken(token string) (*types.SessionClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SessionClaims), args.Error(1)
}
