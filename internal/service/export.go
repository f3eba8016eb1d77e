package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/recipe-genie/backend/internal/types"
)

// DefaultExportLinkTTL is how long an export download link stays valid.
const DefaultExportLinkTTL = 15 * time.Minute

// ObjectStore is the storage an exported plan is uploaded to.
type ObjectStore interface {
	PutObject(ctx context.Context, objectKey string, body []byte, contentType string) error
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}

// PlanReader loads an owner's meal plan.
type PlanReader interface {
	Plan(ctx context.Context, owner uuid.UUID) (types.MealPlan, error)
}

// PlanExport is the document written to object storage.
type PlanExport struct {
	OwnerID    string         `json:"owner_id"`
	ExportedAt time.Time      `json:"exported_at"`
	Plan       types.MealPlan `json:"plan"`
}

// PlanExportService writes a meal plan to object storage and hands back a
// time-limited download link.
type PlanExportService struct {
	plans   PlanReader
	store   ObjectStore
	linkTTL time.Duration
	now     func() time.Time
	logger  *log.Logger
}

// NewPlanExportService creates a new PlanExportService instance. A nil store
// disables exports.
func NewPlanExportService(plans PlanReader, store ObjectStore, linkTTL time.Duration, logger *log.Logger) *PlanExportService {
	if linkTTL <= 0 {
		linkTTL = DefaultExportLinkTTL
	}
	if logger == nil {
		logger = log.Default()
	}
	return &PlanExportService{
		plans:   plans,
		store:   store,
		linkTTL: linkTTL,
		now:     time.Now,
		logger:  logger,
	}
}

// Enabled reports whether exports have somewhere to go.
func (s *PlanExportService) Enabled() bool {
	return s != nil && s.store != nil
}

// ExportPlan uploads owner's plan as JSON and returns a presigned link to it.
func (s *PlanExportService) ExportPlan(ctx context.Context, owner uuid.UUID) (*types.PlanExportResponse, error) {
	if !s.Enabled() {
		return nil, ErrExportDisabled
	}

	plan, err := s.plans.Plan(ctx, owner)
	if err != nil {
		return nil, err
	}

	exportedAt := s.now().UTC()
	body, err := json.Marshal(PlanExport{
		OwnerID:    owner.String(),
		ExportedAt: exportedAt,
		Plan:       plan,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode meal plan: %w", err)
	}

	key := fmt.Sprintf("meal-plans/%s/%s.json", owner, exportedAt.Format("20060102T150405Z"))
	if err := s.store.PutObject(ctx, key, body, "application/json"); err != nil {
		s.logger.Printf("[PlanExport] Failed to upload %s: %v", key, err)
		return nil, fmt.Errorf("failed to upload meal plan: %w", err)
	}

	url, err := s.store.GeneratePresignedURL(ctx, key, s.linkTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign meal plan link: %w", err)
	}

	s.logger.Printf("[PlanExport] Exported meal plan for %s to %s", owner, key)
	return &types.PlanExportResponse{
		URL:       url,
		ExpiresIn: int64(s.linkTTL.Seconds()),
	}, nil
}
