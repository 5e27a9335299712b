package sheets

import (
	"context"

	"study-tracker/internal/model"
	"study-tracker/internal/record"
)

func achievementFromRecord(rec record.Record) model.Achievement {
	return model.Achievement{
		AchievementID: rec["achievement_id"],
		Name:          rec["name"],
		Description:   rec["description"],
		Icon:          rec["icon"],
		Points:        rec.Int("points"),
		Unlocked:      rec.Bool("unlocked"),
		UnlockDate:    rec["unlock_date"],
	}
}

func achievementToRow(a model.Achievement) []any {
	unlocked := "FALSE"
	if a.Unlocked {
		unlocked = "TRUE"
	}
	return []any{
		a.AchievementID, a.Name, a.Description, a.Icon,
		a.Points, unlocked, a.UnlockDate,
	}
}

func (r *implRepository) ListAchievements(ctx context.Context) ([]model.Achievement, error) {
	recs, err := r.listRecords(ctx, model.SheetAchievements, "achievement_id")
	if err != nil {
		return nil, err
	}
	achievements := make([]model.Achievement, 0, len(recs))
	for _, rec := range recs {
		achievements = append(achievements, achievementFromRecord(rec))
	}
	return achievements, nil
}

func (r *implRepository) UpsertAchievement(ctx context.Context, achievement model.Achievement) error {
	return r.upsertRow(ctx, model.SheetAchievements,
		"achievement_id", achievement.AchievementID,
		achievementToRow(achievement), model.SheetHeaders[model.SheetAchievements])
}
