package usecase

import (
	"time"

	"study-tracker/internal/study"
	"study-tracker/internal/study/repository"
	"study-tracker/pkg/log"
)

// implUseCase is the private implementation of study.UseCase.
type implUseCase struct {
	repo  repository.Repository
	stats study.StatsRecorder // optional; nil disables daily-stat upserts
	l     log.Logger
	now   func() time.Time
}

var _ study.UseCase = (*implUseCase)(nil)

// New creates a new study UseCase implementation.
func New(repo repository.Repository, stats study.StatsRecorder, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		stats: stats,
		l:     l,
		now:   time.Now,
	}
}

// NewWithClock pins the clock for tests.
func NewWithClock(repo repository.Repository, stats study.StatsRecorder, l log.Logger, now func() time.Time) *implUseCase {
	return &implUseCase{
		repo:  repo,
		stats: stats,
		l:     l,
		now:   now,
	}
}
