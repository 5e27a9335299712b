package usecase

import (
	"time"

	"study-tracker/internal/progress"
	"study-tracker/internal/progress/repository"
	"study-tracker/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

var _ progress.UseCase = (*implUseCase)(nil)

func New(repo repository.Repository, l log.Logger) progress.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}

// NewWithClock pins the clock for tests.
func NewWithClock(repo repository.Repository, l log.Logger, now func() time.Time) progress.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  now,
	}
}
