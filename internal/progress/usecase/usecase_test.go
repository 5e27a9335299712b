package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"study-tracker/internal/model"
	"study-tracker/internal/progress"
	"study-tracker/internal/progress/usecase"
	"study-tracker/pkg/log"
)

var fixedNow = time.Date(2024, 1, 15, 14, 30, 0, 0, time.Local)

type fakeRepo struct {
	achievements []model.Achievement
	settings     []model.Setting
	stats        []model.UserStat

	listStatsErr error
}

func (f *fakeRepo) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	return f.achievements, nil
}

func (f *fakeRepo) UpsertAchievement(ctx context.Context, a model.Achievement) error {
	for i := range f.achievements {
		if f.achievements[i].AchievementID == a.AchievementID {
			f.achievements[i] = a
			return nil
		}
	}
	f.achievements = append(f.achievements, a)
	return nil
}

func (f *fakeRepo) ListSettings(ctx context.Context) ([]model.Setting, error) {
	return f.settings, nil
}

func (f *fakeRepo) UpsertSetting(ctx context.Context, s model.Setting) error {
	for i := range f.settings {
		if f.settings[i].Key == s.Key {
			f.settings[i] = s
			return nil
		}
	}
	f.settings = append(f.settings, s)
	return nil
}

func (f *fakeRepo) ListUserStats(ctx context.Context) ([]model.UserStat, error) {
	if f.listStatsErr != nil {
		return nil, f.listStatsErr
	}
	return f.stats, nil
}

func (f *fakeRepo) UpsertUserStat(ctx context.Context, stat model.UserStat) error {
	for i := range f.stats {
		if f.stats[i].Date == stat.Date {
			f.stats[i] = stat
			return nil
		}
	}
	f.stats = append(f.stats, stat)
	return nil
}

func newUC(repo *fakeRepo) progress.UseCase {
	return usecase.NewWithClock(repo, log.NewNop(), func() time.Time { return fixedNow })
}

func TestUpdateAchievement(t *testing.T) {
	ctx := context.Background()

	t.Run("Unlock Stamps Today When Date Missing", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := newUC(repo)
		got, err := uc.UpdateAchievement(ctx, progress.UpdateAchievementInput{
			AchievementID: "first-session",
			Name:          "First Session",
			Points:        10,
			Unlocked:      true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.UnlockDate != "2024-01-15" {
			t.Errorf("expected unlock date 2024-01-15, got %q", got.UnlockDate)
		}
	})

	t.Run("Upsert Overwrites Existing Row", func(t *testing.T) {
		repo := &fakeRepo{achievements: []model.Achievement{
			{AchievementID: "streak-7", Name: "Week Streak", Unlocked: false},
		}}
		uc := newUC(repo)
		if _, err := uc.UpdateAchievement(ctx, progress.UpdateAchievementInput{
			AchievementID: "streak-7",
			Name:          "Week Streak",
			Unlocked:      true,
			UnlockDate:    "2024-01-14",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.achievements) != 1 {
			t.Fatalf("upsert must not duplicate, got %d rows", len(repo.achievements))
		}
		if !repo.achievements[0].Unlocked || repo.achievements[0].UnlockDate != "2024-01-14" {
			t.Errorf("row not overwritten: %+v", repo.achievements[0])
		}
	})

	t.Run("Missing ID Rejected", func(t *testing.T) {
		uc := newUC(&fakeRepo{})
		if _, err := uc.UpdateAchievement(ctx, progress.UpdateAchievementInput{}); !errors.Is(err, progress.ErrMissingAchievementID) {
			t.Errorf("expected ErrMissingAchievementID, got %v", err)
		}
	})
}

func TestSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("List Flattens To Map", func(t *testing.T) {
		repo := &fakeRepo{settings: []model.Setting{
			{Key: "exam_date", Value: "2024-05-07"},
			{Key: "theme", Value: "dark"},
		}}
		uc := newUC(repo)
		got, err := uc.ListSettings(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got["exam_date"] != "2024-05-07" || got["theme"] != "dark" {
			t.Errorf("unexpected map: %v", got)
		}
	})

	t.Run("Update Stamps Timestamp", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := newUC(repo)
		got, err := uc.UpdateSetting(ctx, "theme", "light")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.UpdatedAt != "2024-01-15 14:30:00" {
			t.Errorf("expected stamped updated_at, got %q", got.UpdatedAt)
		}
	})

	t.Run("Empty Key Rejected", func(t *testing.T) {
		uc := newUC(&fakeRepo{})
		if _, err := uc.UpdateSetting(ctx, "  ", "x"); !errors.Is(err, progress.ErrMissingSettingKey) {
			t.Errorf("expected ErrMissingSettingKey, got %v", err)
		}
	})
}

func TestUserStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Add Merges Into Existing Day", func(t *testing.T) {
		repo := &fakeRepo{stats: []model.UserStat{
			{Date: "2024-01-15", TasksCompleted: 3, CorrectTasks: 2, StudyTimeMinutes: 45},
		}}
		uc := newUC(repo)
		got, err := uc.AddUserStat(ctx, progress.AddUserStatInput{
			TasksCompleted:   2,
			CorrectTasks:     1,
			StudyTimeMinutes: 25,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TasksCompleted != 5 || got.CorrectTasks != 3 || got.StudyTimeMinutes != 70 {
			t.Errorf("counters not merged: %+v", got)
		}
		if len(repo.stats) != 1 {
			t.Errorf("same day must stay one row, got %d", len(repo.stats))
		}
	})

	t.Run("Add Starts New Day From Zero", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := newUC(repo)
		got, err := uc.AddUserStat(ctx, progress.AddUserStatInput{
			Date:             "2024-01-10",
			PomodoroSessions: 1,
			PointsEarned:     5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Date != "2024-01-10" || got.PomodoroSessions != 1 || got.PointsEarned != 5 {
			t.Errorf("unexpected stat: %+v", got)
		}
	})

	t.Run("Today Stats Default To Zero", func(t *testing.T) {
		uc := newUC(&fakeRepo{stats: []model.UserStat{{Date: "2024-01-14", TasksCompleted: 9}}})
		got, err := uc.TodayStats(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Date != "2024-01-15" || got.TasksCompleted != 0 {
			t.Errorf("expected zero-valued today, got %+v", got)
		}
	})

	t.Run("Repository Error Propagates", func(t *testing.T) {
		wantErr := errors.New("quota exceeded")
		uc := newUC(&fakeRepo{listStatsErr: wantErr})
		if _, err := uc.AddUserStat(ctx, progress.AddUserStatInput{TasksCompleted: 1}); !errors.Is(err, wantErr) {
			t.Errorf("expected repo error, got %v", err)
		}
	})

	t.Run("Record Session Folds Counters", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := newUC(repo)
		if err := uc.RecordSession(ctx, "2024-01-15", 4, 3, 60); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.stats) != 1 {
			t.Fatalf("expected one stat row, got %d", len(repo.stats))
		}
		got := repo.stats[0]
		if got.TasksCompleted != 4 || got.CorrectTasks != 3 || got.StudyTimeMinutes != 60 {
			t.Errorf("unexpected stat: %+v", got)
		}
	})
}
