package sheets

import (
	"context"

	"study-tracker/internal/model"
	"study-tracker/internal/record"
)

// taskFromRecord maps a keyed row onto the task model, re-normalizing the
// correctness value so historical free-form rows come out canonical.
func taskFromRecord(rec record.Record) model.StudyTask {
	return model.StudyTask{
		TaskID:             rec["task_id"],
		TaskName:           rec["task_name"],
		Description:        rec["description"],
		Categories:         rec["categories"],
		CorrectlyCompleted: record.Correctness(rec["correctly_completed"]),
		StartTime:          rec["start_time"],
		EndTime:            rec["end_time"],
		Location:           rec["location"],
		Subject:            rec["subject"],
		SessionID:          rec["session_id"],
		Timestamp:          rec["timestamp"],
	}
}

// taskToRow renders a task in the sheet's positional column order.
func taskToRow(t model.StudyTask) []any {
	return []any{
		t.TaskID, t.TaskName, t.Description, t.Categories, t.CorrectlyCompleted,
		t.StartTime, t.EndTime, t.Location, t.Subject, t.SessionID,
	}
}

// ListTasks returns every task row, incomplete rows dropped.
func (r *implRepository) ListTasks(ctx context.Context) ([]model.StudyTask, error) {
	recs, err := r.listRecords(ctx, model.SheetStudyTasks, "task_id")
	if err != nil {
		return nil, err
	}
	tasks := make([]model.StudyTask, 0, len(recs))
	for _, rec := range recs {
		tasks = append(tasks, taskFromRecord(rec))
	}
	return tasks, nil
}

// CreateTask appends one task row, provisioning the sheet when missing.
func (r *implRepository) CreateTask(ctx context.Context, task model.StudyTask) error {
	return r.CreateTasks(ctx, []model.StudyTask{task})
}

// CreateTasks appends several task rows in one call.
func (r *implRepository) CreateTasks(ctx context.Context, tasks []model.StudyTask) error {
	if len(tasks) == 0 {
		return nil
	}
	if err := r.sheets.EnsureSheet(ctx, model.SheetStudyTasks, model.SheetHeaders[model.SheetStudyTasks]); err != nil {
		return err
	}
	rows := make([][]any, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, taskToRow(t))
	}
	return r.sheets.AppendRows(ctx, model.SheetStudyTasks, rows)
}
