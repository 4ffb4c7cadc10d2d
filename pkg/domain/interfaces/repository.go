package interfaces

import (
	"context"

	"github.com/secmon-lab/gotobot/pkg/domain/model"
	"github.com/secmon-lab/gotobot/pkg/domain/types"
)

// Repository keeps runtime state: pending selections and recent move outcomes.
// Nothing survives a restart.
type Repository interface {
	// Selection request operations
	PutSelectionRequest(ctx context.Context, req *model.SelectionRequest) error
	GetSelectionRequest(ctx context.Context, id types.SelectionID) (*model.SelectionRequest, error)
	DeleteSelectionRequest(ctx context.Context, id types.SelectionID) error

	// Move outcome operations
	SaveMoveOutcome(ctx context.Context, outcome *model.MoveOutcome) error
	ListMoveOutcomes(ctx context.Context, limit int) ([]*model.MoveOutcome, error)

	// Close releases resources held by the repository
	Close() error
}
