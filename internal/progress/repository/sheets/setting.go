package sheets

import (
	"context"

	"study-tracker/internal/model"
	"study-tracker/internal/record"
)

func settingFromRecord(rec record.Record) model.Setting {
	return model.Setting{
		Key:       rec["key"],
		Value:     rec["value"],
		UpdatedAt: rec["updated_at"],
	}
}

func (r *implRepository) ListSettings(ctx context.Context) ([]model.Setting, error) {
	recs, err := r.listRecords(ctx, model.SheetSettings, "key")
	if err != nil {
		return nil, err
	}
	settings := make([]model.Setting, 0, len(recs))
	for _, rec := range recs {
		settings = append(settings, settingFromRecord(rec))
	}
	return settings, nil
}

func (r *implRepository) UpsertSetting(ctx context.Context, setting model.Setting) error {
	return r.upsertRow(ctx, model.SheetSettings,
		"key", setting.Key,
		[]any{setting.Key, setting.Value, setting.UpdatedAt},
		model.SheetHeaders[model.SheetSettings])
}
