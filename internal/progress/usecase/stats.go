package usecase

import (
	"context"
	"strings"

	"study-tracker/internal/model"
	"study-tracker/internal/progress"
)

func (uc *implUseCase) today() string {
	return uc.now().Format("2006-01-02")
}

func (uc *implUseCase) ListUserStats(ctx context.Context) ([]model.UserStat, error) {
	stats, err := uc.repo.ListUserStats(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "progress.ListUserStats: %v", err)
		return nil, err
	}
	return stats, nil
}

func (uc *implUseCase) findStat(ctx context.Context, date string) (model.UserStat, bool, error) {
	stats, err := uc.repo.ListUserStats(ctx)
	if err != nil {
		return model.UserStat{}, false, err
	}
	for _, stat := range stats {
		if stat.Date == date {
			return stat, true, nil
		}
	}
	return model.UserStat{}, false, nil
}

// AddUserStat merges the increments into the day's existing counters and
// writes the row back. The missing day starts from zeroes.
func (uc *implUseCase) AddUserStat(ctx context.Context, input progress.AddUserStatInput) (model.UserStat, error) {
	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = uc.today()
	}

	stat, _, err := uc.findStat(ctx, date)
	if err != nil {
		uc.l.Errorf(ctx, "progress.AddUserStat: %v", err)
		return model.UserStat{}, err
	}
	stat.Date = date
	stat.TasksCompleted += input.TasksCompleted
	stat.CorrectTasks += input.CorrectTasks
	stat.PointsEarned += input.PointsEarned
	stat.PomodoroSessions += input.PomodoroSessions
	stat.StudyTimeMinutes += input.StudyTimeMinutes

	if err := uc.repo.UpsertUserStat(ctx, stat); err != nil {
		uc.l.Errorf(ctx, "progress.AddUserStat: %v", err)
		return model.UserStat{}, err
	}
	return stat, nil
}

// TodayStats returns today's counters, zero-valued when the day has no row.
func (uc *implUseCase) TodayStats(ctx context.Context) (model.UserStat, error) {
	date := uc.today()
	stat, found, err := uc.findStat(ctx, date)
	if err != nil {
		uc.l.Errorf(ctx, "progress.TodayStats: %v", err)
		return model.UserStat{}, err
	}
	if !found {
		return model.UserStat{Date: date}, nil
	}
	return stat, nil
}

// RecordSession folds a completed session's counters into the daily stats.
func (uc *implUseCase) RecordSession(ctx context.Context, date string, tasksCompleted, correctTasks, studyMinutes int) error {
	_, err := uc.AddUserStat(ctx, progress.AddUserStatInput{
		Date:             date,
		TasksCompleted:   tasksCompleted,
		CorrectTasks:     correctTasks,
		StudyTimeMinutes: studyMinutes,
	})
	return err
}
