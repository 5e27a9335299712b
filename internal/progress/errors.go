package progress

import "errors"

var (
	ErrMissingAchievementID = errors.New("achievement_id is required")
	ErrMissingSettingKey    = errors.New("setting key is required")
)
