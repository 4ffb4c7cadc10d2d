package usecase

import (
	"github.com/secmon-lab/gotobot/pkg/domain/model"
	"github.com/secmon-lab/gotobot/pkg/i18n"
)

// ResultReporter turns a move outcome into the operator's status message
type ResultReporter struct {
	catalog *i18n.Catalog
}

// NewResultReporter creates a new ResultReporter
func NewResultReporter(catalog *i18n.Catalog) *ResultReporter {
	return &ResultReporter{catalog: catalog}
}

// Report builds the status message. The failure clause is appended only when
// at least one occupant was not moved.
func (r *ResultReporter) Report(outcome *model.MoveOutcome, sourceName, destinationName string) string {
	msg := r.catalog.Text(i18n.KeyMoved, outcome.Moved(), sourceName, destinationName)
	if failed := outcome.Failed(); failed > 0 {
		msg += r.catalog.Text(i18n.KeyMoveFailures, failed)
	}
	return msg
}
