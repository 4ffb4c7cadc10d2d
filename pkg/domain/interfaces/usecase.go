package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . Goto

import (
	"context"

	"github.com/secmon-lab/gotobot/pkg/domain/model"
)

// Goto handles the /goto command and the interactions of its picker
type Goto interface {
	// HandleCommand runs the whole flow for one invocation and reports to the operator
	HandleCommand(ctx context.Context, inv *model.Invocation) error

	// HandleSelection delivers a destination choice to a pending selection
	HandleSelection(ctx context.Context, event *model.SelectionEvent) error

	// HandleCancel cancels a pending selection
	HandleCancel(ctx context.Context, event *model.SelectionEvent) error
}
