package events

import (
	"context"

	"go.uber.org/zap"

	"github.com/username/weekcal/internal/calendar"
)

// CompositeSource implements Source with fallback strategy
// Primary: usually a RemoteSource
// Fallback: a local file with the same events
type CompositeSource struct {
	primary  Source
	fallback Source
	logger   *zap.Logger
}

// NewCompositeSource creates a new CompositeSource
func NewCompositeSource(primary, fallback Source, logger *zap.Logger) *CompositeSource {
	return &CompositeSource{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Events tries the primary source first
func (cs *CompositeSource) Events(ctx context.Context) ([]calendar.RecurringEvent, error) {
	events, err := cs.primary.Events(ctx)
	if err == nil {
		return events, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	cs.logger.Warn("Primary event source failed, falling back",
		zap.Error(err))

	return cs.fallback.Events(ctx)
}
