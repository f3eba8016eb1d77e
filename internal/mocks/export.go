package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-genie/backend/internal/types"
)

// MockPlanExportService is a mock implementation of the plan export service
type MockPlanExportService struct {
	mock.Mock
}

func (m *MockPlanExportService) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockPlanExportService) ExportPlan(ctx context.Context, owner uuid.UUID) (*types.PlanExportResponse, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PlanExportResponse), args.Error(1)
}
