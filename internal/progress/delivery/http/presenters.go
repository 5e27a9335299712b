package http

import (
	"encoding/json"

	"study-tracker/internal/dispatch"
	"study-tracker/internal/progress"
)

type updateAchievementReq struct {
	AchievementID string `json:"achievement_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	Points        int    `json:"points"`
	Unlocked      bool   `json:"unlocked"`
	UnlockDate    string `json:"unlock_date"`
}

func (r *updateAchievementReq) UnmarshalJSON(data []byte) error {
	if dispatch.IsArray(data) {
		var args dispatch.Args
		if err := json.Unmarshal(data, &args); err != nil {
			return err
		}
		*r = updateAchievementReq{
			AchievementID: args.String(0),
			Name:          args.String(1),
			Description:   args.String(2),
			Icon:          args.String(3),
			Points:        args.Int(4),
			Unlocked:      looseBool(args.String(5)),
			UnlockDate:    args.String(6),
		}
		return nil
	}
	type plain updateAchievementReq
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = updateAchievementReq(p)
	return nil
}

func looseBool(s string) bool {
	switch s {
	case "true", "TRUE", "yes", "1":
		return true
	default:
		return false
	}
}

func (r updateAchievementReq) toInput() progress.UpdateAchievementInput {
	return progress.UpdateAchievementInput{
		AchievementID: r.AchievementID,
		Name:          r.Name,
		Description:   r.Description,
		Icon:          r.Icon,
		Points:        r.Points,
		Unlocked:      r.Unlocked,
		UnlockDate:    r.UnlockDate,
	}
}

type updateSettingReq struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (r *updateSettingReq) UnmarshalJSON(data []byte) error {
	if dispatch.IsArray(data) {
		var args dispatch.Args
		if err := json.Unmarshal(data, &args); err != nil {
			return err
		}
		*r = updateSettingReq{
			Key:   args.String(0),
			Value: args.String(1),
		}
		return nil
	}
	type plain updateSettingReq
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = updateSettingReq(p)
	return nil
}

type addUserStatReq struct {
	Date             string `json:"date"`
	TasksCompleted   int    `json:"tasks_completed"`
	CorrectTasks     int    `json:"correct_tasks"`
	PointsEarned     int    `json:"points_earned"`
	PomodoroSessions int    `json:"pomodoro_sessions"`
	StudyTimeMinutes int    `json:"study_time_minutes"`
}

func (r *addUserStatReq) UnmarshalJSON(data []byte) error {
	if dispatch.IsArray(data) {
		var args dispatch.Args
		if err := json.Unmarshal(data, &args); err != nil {
			return err
		}
		*r = addUserStatReq{
			Date:             args.String(0),
			TasksCompleted:   args.Int(1),
			CorrectTasks:     args.Int(2),
			PointsEarned:     args.Int(3),
			PomodoroSessions: args.Int(4),
			StudyTimeMinutes: args.Int(5),
		}
		return nil
	}
	type plain addUserStatReq
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = addUserStatReq(p)
	return nil
}

func (r addUserStatReq) toInput() progress.AddUserStatInput {
	return progress.AddUserStatInput{
		Date:             r.Date,
		TasksCompleted:   r.TasksCompleted,
		CorrectTasks:     r.CorrectTasks,
		PointsEarned:     r.PointsEarned,
		PomodoroSessions: r.PomodoroSessions,
		StudyTimeMinutes: r.StudyTimeMinutes,
	}
}
