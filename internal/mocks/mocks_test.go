package mocks

import (
	"github.com/pageza/recipe-genie/backend/internal/service"
)

var (
	_ service.IRecipeService     = (*MockRecipeService)(nil)
	_ service.ISessionService    = (*MockSessionService)(nil)
	_ service.IPlanExportService = (*MockPlanExportService)(nil)
)
