package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"study-tracker/internal/model"
	"study-tracker/internal/record"
	"study-tracker/internal/study"
)

// AddTask validates, normalizes and appends one task. Tasks are immutable
// once written; there is deliberately no update path.
func (uc *implUseCase) AddTask(ctx context.Context, input study.CreateTaskInput) (model.StudyTask, error) {
	task, err := uc.buildTask(input)
	if err != nil {
		return model.StudyTask{}, err
	}
	if err := uc.repo.CreateTask(ctx, task); err != nil {
		uc.l.Errorf(ctx, "uc.AddTask CreateTask: %v", err)
		return model.StudyTask{}, err
	}
	return task, nil
}

// ListTasks returns all logged tasks.
func (uc *implUseCase) ListTasks(ctx context.Context) ([]model.StudyTask, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

// buildTask turns a submission into a persistable task: generated ID when
// absent, correctness canonicalized at the boundary.
func (uc *implUseCase) buildTask(input study.CreateTaskInput) (model.StudyTask, error) {
	if strings.TrimSpace(input.TaskName) == "" {
		return model.StudyTask{}, study.ErrMissingTaskName
	}
	taskID := strings.TrimSpace(input.TaskID)
	if taskID == "" {
		taskID = uuid.NewString()
	}
	return model.StudyTask{
		TaskID:             taskID,
		TaskName:           strings.TrimSpace(input.TaskName),
		Description:        input.Description,
		Categories:         input.Categories,
		CorrectlyCompleted: record.Correctness(input.CorrectlyCompleted),
		StartTime:          input.StartTime,
		EndTime:            input.EndTime,
		Location:           input.Location,
		Subject:            input.Subject,
		SessionID:          input.SessionID,
	}, nil
}
