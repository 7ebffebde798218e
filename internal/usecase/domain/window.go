// Package domain contains application services orchestrating the release-notes pipeline.
package domain

import (
	"fmt"
	"time"

	"release-notes-webhook/internal/entities"
)

// NewTimeWindow returns the range [now - lookbackDays days, now].
func NewTimeWindow(now time.Time, lookbackDays int) (entities.TimeWindow, error) {
	if lookbackDays < 0 {
		return entities.TimeWindow{}, fmt.Errorf("%w: lookback days must be non-negative, got %d", entities.ErrConfiguration, lookbackDays)
	}
	return entities.TimeWindow{
		Start: now.Add(-time.Duration(lookbackDays) * 24 * time.Hour),
		End:   now,
	}, nil
}
