package usecase

import (
	"context"
	"strings"

	"study-tracker/internal/model"
	"study-tracker/internal/progress"
)

func (uc *implUseCase) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	achievements, err := uc.repo.ListAchievements(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "progress.ListAchievements: %v", err)
		return nil, err
	}
	return achievements, nil
}

// UpdateAchievement overwrites the achievement row by ID, creating it when
// absent. An unlock without an explicit date is stamped with today.
func (uc *implUseCase) UpdateAchievement(ctx context.Context, input progress.UpdateAchievementInput) (model.Achievement, error) {
	id := strings.TrimSpace(input.AchievementID)
	if id == "" {
		return model.Achievement{}, progress.ErrMissingAchievementID
	}

	achievement := model.Achievement{
		AchievementID: id,
		Name:          input.Name,
		Description:   input.Description,
		Icon:          input.Icon,
		Points:        input.Points,
		Unlocked:      input.Unlocked,
		UnlockDate:    input.UnlockDate,
	}
	if achievement.Unlocked && achievement.UnlockDate == "" {
		achievement.UnlockDate = uc.today()
	}

	if err := uc.repo.UpsertAchievement(ctx, achievement); err != nil {
		uc.l.Errorf(ctx, "progress.UpdateAchievement: %v", err)
		return model.Achievement{}, err
	}
	return achievement, nil
}
