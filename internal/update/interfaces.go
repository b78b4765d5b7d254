package update

import (
	"context"

	"github.com/insushim/neis-helper/internal/model"
)

// UpdateChecker defines the interface the UI uses to run the startup check.
type UpdateChecker interface {
	// Start runs the check once in the background and calls onOffer when a
	// different version is published. Later calls are no-ops.
	Start(ctx context.Context, onOffer func(model.UpdateOffer))

	// State returns the current check state
	State() model.CheckState

	// Done is closed when the background check started by Start returns
	Done() <-chan struct{}
}
