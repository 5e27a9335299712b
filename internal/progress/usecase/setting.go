package usecase

import (
	"context"
	"strings"

	"study-tracker/internal/model"
	"study-tracker/internal/progress"
)

// ListSettings flattens the Settings sheet into a key/value map. Duplicate
// keys resolve to the last row, matching the upsert's overwrite order.
func (uc *implUseCase) ListSettings(ctx context.Context) (map[string]string, error) {
	settings, err := uc.repo.ListSettings(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "progress.ListSettings: %v", err)
		return nil, err
	}
	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}
	return out, nil
}

func (uc *implUseCase) UpdateSetting(ctx context.Context, key, value string) (model.Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return model.Setting{}, progress.ErrMissingSettingKey
	}

	setting := model.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: uc.now().Format("2006-01-02 15:04:05"),
	}
	if err := uc.repo.UpsertSetting(ctx, setting); err != nil {
		uc.l.Errorf(ctx, "progress.UpdateSetting: %v", err)
		return model.Setting{}, err
	}
	return setting, nil
}
