package http

import (
	"encoding/json"

	"study-tracker/internal/dispatch"
	"study-tracker/internal/study"
)

// Request DTOs. The legacy form posts either a structured object or a flat
// array ordered like the sheet columns; UnmarshalJSON accepts both.

type createTaskReq struct {
	TaskID             string `json:"task_id"`
	TaskName           string `json:"task_name"`
	Description        string `json:"description"`
	Categories         string `json:"categories"`
	CorrectlyCompleted any    `json:"correctly_completed"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	Location           string `json:"location"`
	Subject            string `json:"subject"`
	SessionID          string `json:"session_id"`
}

func (r *createTaskReq) UnmarshalJSON(data []byte) error {
	if dispatch.IsArray(data) {
		var args dispatch.Args
		if err := json.Unmarshal(data, &args); err != nil {
			return err
		}
		*r = createTaskReq{
			TaskID:             args.String(0),
			TaskName:           args.String(1),
			Description:        args.String(2),
			Categories:         args.String(3),
			CorrectlyCompleted: args.Any(4),
			StartTime:          args.String(5),
			EndTime:            args.String(6),
			Location:           args.String(7),
			Subject:            args.String(8),
			SessionID:          args.String(9),
		}
		return nil
	}
	type plain createTaskReq
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = createTaskReq(p)
	return nil
}

func (r createTaskReq) toInput() study.CreateTaskInput {
	return study.CreateTaskInput{
		TaskID:             r.TaskID,
		TaskName:           r.TaskName,
		Description:        r.Description,
		Categories:         r.Categories,
		CorrectlyCompleted: r.CorrectlyCompleted,
		StartTime:          r.StartTime,
		EndTime:            r.EndTime,
		Location:           r.Location,
		Subject:            r.Subject,
		SessionID:          r.SessionID,
	}
}

type createSessionReq struct {
	SessionID          string `json:"session_id"`
	StartTime          string `json:"start_time"`
	EndTime            string `json:"end_time"`
	DurationMinutes    int    `json:"duration_minutes"`
	TotalTasks         int    `json:"total_tasks"`
	CorrectTasks       int    `json:"correct_tasks"`
	AccuracyPercentage int    `json:"accuracy_percentage"`
	Notes              string `json:"notes"`
}

func (r *createSessionReq) UnmarshalJSON(data []byte) error {
	if dispatch.IsArray(data) {
		var args dispatch.Args
		if err := json.Unmarshal(data, &args); err != nil {
			return err
		}
		*r = createSessionReq{
			SessionID:          args.String(0),
			StartTime:          args.String(1),
			EndTime:            args.String(2),
			DurationMinutes:    args.Int(3),
			TotalTasks:         args.Int(4),
			CorrectTasks:       args.Int(5),
			AccuracyPercentage: args.Int(6),
			Notes:              args.String(7),
		}
		return nil
	}
	type plain createSessionReq
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = createSessionReq(p)
	return nil
}

func (r createSessionReq) toInput() study.CreateSessionInput {
	return study.CreateSessionInput{
		SessionID:          r.SessionID,
		StartTime:          r.StartTime,
		EndTime:            r.EndTime,
		DurationMinutes:    r.DurationMinutes,
		TotalTasks:         r.TotalTasks,
		CorrectTasks:       r.CorrectTasks,
		AccuracyPercentage: r.AccuracyPercentage,
		Notes:              r.Notes,
	}
}

type createPomodoroReq struct {
	SessionID       string `json:"session_id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Category        string `json:"category"`
	Subject         string `json:"subject"`
	PointsEarned    int    `json:"points_earned"`
	Status          string `json:"status"`
}

func (r *createPomodoroReq) UnmarshalJSON(data []byte) error {
	if dispatch.IsArray(data) {
		var args dispatch.Args
		if err := json.Unmarshal(data, &args); err != nil {
			return err
		}
		*r = createPomodoroReq{
			SessionID:       args.String(0),
			StartTime:       args.String(1),
			EndTime:         args.String(2),
			DurationMinutes: args.Int(3),
			Category:        args.String(4),
			Subject:         args.String(5),
			PointsEarned:    args.Int(6),
			Status:          args.String(7),
		}
		return nil
	}
	type plain createPomodoroReq
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = createPomodoroReq(p)
	return nil
}

func (r createPomodoroReq) toInput() study.CreatePomodoroInput {
	return study.CreatePomodoroInput{
		SessionID:       r.SessionID,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes,
		Category:        r.Category,
		Subject:         r.Subject,
		PointsEarned:    r.PointsEarned,
		Status:          r.Status,
	}
}

// saveCompleteSessionReq is always a structured object: one session plus its
// tasks.
type saveCompleteSessionReq struct {
	Session createSessionReq `json:"session"`
	Tasks   []createTaskReq  `json:"tasks"`
}

func (r saveCompleteSessionReq) toInput() study.SaveCompleteSessionInput {
	input := study.SaveCompleteSessionInput{
		Session: r.Session.toInput(),
		Tasks:   make([]study.CreateTaskInput, 0, len(r.Tasks)),
	}
	for _, task := range r.Tasks {
		input.Tasks = append(input.Tasks, task.toInput())
	}
	return input
}
