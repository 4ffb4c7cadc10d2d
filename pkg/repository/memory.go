package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gotobot/pkg/domain/interfaces"
	"github.com/secmon-lab/gotobot/pkg/domain/model"
	"github.com/secmon-lab/gotobot/pkg/domain/types"
)

// DefaultHistorySize is the number of move outcomes kept when no size is given
const DefaultHistorySize = 100

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu          sync.RWMutex
	selections  map[types.SelectionID]*model.SelectionRequest
	outcomes    []*model.MoveOutcome
	historySize int
}

// MemoryOption configures a Memory repository
type MemoryOption func(*Memory)

// WithHistorySize sets how many move outcomes are retained
func WithHistorySize(size int) MemoryOption {
	return func(m *Memory) {
		if size > 0 {
			m.historySize = size
		}
	}
}

// NewMemory creates a new memory repository
func NewMemory(opts ...MemoryOption) interfaces.Repository {
	m := &Memory{
		selections:  make(map[types.SelectionID]*model.SelectionRequest),
		historySize: DefaultHistorySize,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// PutSelectionRequest stores a pending selection request
func (m *Memory) PutSelectionRequest(ctx context.Context, req *model.SelectionRequest) error {
	if req == nil {
		return goerr.New("selection request is nil")
	}
	if req.ID == "" {
		return goerr.New("selection request ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Stored by pointer: the request carries the channels its waiter listens on
	m.selections[req.ID] = req
	return nil
}

// GetSelectionRequest retrieves a pending selection request by ID
func (m *Memory) GetSelectionRequest(ctx context.Context, id types.SelectionID) (*model.SelectionRequest, error) {
	if id == "" {
		return nil, goerr.New("selection request ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	req, exists := m.selections[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrSelectionRequestNotFound, "failed to get selection request",
			goerr.V("id", id))
	}
	return req, nil
}

// DeleteSelectionRequest removes a selection request. Deleting an unknown ID is not an error.
func (m *Memory) DeleteSelectionRequest(ctx context.Context, id types.SelectionID) error {
	if id == "" {
		return goerr.New("selection request ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.selections, id)
	return nil
}

// SaveMoveOutcome appends a move outcome, dropping the oldest beyond the history size
func (m *Memory) SaveMoveOutcome(ctx context.Context, outcome *model.MoveOutcome) error {
	if outcome == nil {
		return goerr.New("move outcome is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Deep copy to prevent external modifications
	outcomeCopy := *outcome
	outcomeCopy.Results = append([]model.MoveResult(nil), outcome.Results...)

	m.outcomes = append(m.outcomes, &outcomeCopy)
	if over := len(m.outcomes) - m.historySize; over > 0 {
		m.outcomes = append([]*model.MoveOutcome(nil), m.outcomes[over:]...)
	}
	return nil
}

// ListMoveOutcomes lists recent move outcomes, newest first
func (m *Memory) ListMoveOutcomes(ctx context.Context, limit int) ([]*model.MoveOutcome, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.MoveOutcome, 0, len(m.outcomes))
	for i := len(m.outcomes) - 1; i >= 0; i-- {
		outcomeCopy := *m.outcomes[i]
		result = append(result, &outcomeCopy)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

// Close closes the repository (no-op for memory)
func (m *Memory) Close() error {
	return nil
}
