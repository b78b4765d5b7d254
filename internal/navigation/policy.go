// Package navigation decides whether a link opened inside the browser
// surface stays there or is handed to the system.
package navigation

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Launcher opens a URL outside the app
type Launcher interface {
	Open(rawURL string) error
}

// Decision is the outcome for one navigation target
type Decision int

const (
	// LoadInternally lets the browser surface load the target
	LoadInternally Decision = iota
	// OpenExternally hands the target to the Launcher
	OpenExternally
)

func (d Decision) String() string {
	switch d {
	case LoadInternally:
		return "internal"
	case OpenExternally:
		return "external"
	default:
		return "unknown"
	}
}

// Policy keeps same-origin targets inside the surface and sends
// everything else to the Launcher.
type Policy struct {
	origin   string
	launcher Launcher
	logger   *zap.Logger
}

// NewPolicy creates a policy for the given application origin
func NewPolicy(origin string, launcher Launcher, logger *zap.Logger) *Policy {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Policy{origin: origin, launcher: launcher, logger: logger}
}

// Classify returns the decision for target without side effects. The
// match is a plain prefix comparison against the origin.
func (p *Policy) Classify(target string) Decision {
	if strings.HasPrefix(target, p.origin) {
		return LoadInternally
	}
	return OpenExternally
}

// Decide classifies target and, for external targets, dispatches it to the
// Launcher exactly once. The launcher error is returned untranslated.
func (p *Policy) Decide(target string) (Decision, error) {
	decision := p.Classify(target)
	if decision == LoadInternally {
		return decision, nil
	}
	if err := p.launcher.Open(target); err != nil {
		return decision, fmt.Errorf("open %s externally: %w", target, err)
	}
	return decision, nil
}

// ShouldOverride reports whether the surface must not load target itself.
// It returns true for every external target, even if dispatch failed.
func (p *Policy) ShouldOverride(target string) bool {
	decision, err := p.Decide(target)
	if err != nil {
		p.logger.Warn("external dispatch failed", zap.String("url", target), zap.Error(err))
	}
	return decision == OpenExternally
}
