package usecase

import (
	"time"

	"study-tracker/internal/analytics"
	"study-tracker/pkg/log"
)

// implUseCase is the private implementation of analytics.UseCase.
type implUseCase struct {
	l   log.Logger
	now func() time.Time
}

var _ analytics.UseCase = (*implUseCase)(nil)

// New creates a new analytics UseCase implementation.
func New(l log.Logger) *implUseCase {
	return &implUseCase{
		l:   l,
		now: time.Now,
	}
}

// NewWithClock creates a UseCase with an injected clock, for deterministic
// timeframe filtering and streaks in tests.
func NewWithClock(l log.Logger, now func() time.Time) *implUseCase {
	return &implUseCase{
		l:   l,
		now: now,
	}
}
