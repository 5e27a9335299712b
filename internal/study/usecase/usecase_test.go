package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"study-tracker/internal/model"
	"study-tracker/internal/study"
	"study-tracker/internal/study/usecase"
	"study-tracker/pkg/log"
)

// fakeRepo is a func-field fake of the study repository.
type fakeRepo struct {
	listTasksFunc      func(ctx context.Context) ([]model.StudyTask, error)
	createTasksFunc    func(ctx context.Context, tasks []model.StudyTask) error
	listSessionsFunc   func(ctx context.Context) ([]model.StudySession, error)
	createSessionFunc  func(ctx context.Context, s model.StudySession) error
	listPomodorosFunc  func(ctx context.Context) ([]model.PomodoroSession, error)
	createPomodoroFunc func(ctx context.Context, p model.PomodoroSession) error
}

func (f *fakeRepo) ListTasks(ctx context.Context) ([]model.StudyTask, error) {
	if f.listTasksFunc != nil {
		return f.listTasksFunc(ctx)
	}
	return nil, nil
}

func (f *fakeRepo) CreateTask(ctx context.Context, t model.StudyTask) error {
	return f.CreateTasks(ctx, []model.StudyTask{t})
}

func (f *fakeRepo) CreateTasks(ctx context.Context, tasks []model.StudyTask) error {
	if f.createTasksFunc != nil {
		return f.createTasksFunc(ctx, tasks)
	}
	return nil
}

func (f *fakeRepo) ListSessions(ctx context.Context) ([]model.StudySession, error) {
	if f.listSessionsFunc != nil {
		return f.listSessionsFunc(ctx)
	}
	return nil, nil
}

func (f *fakeRepo) CreateSession(ctx context.Context, s model.StudySession) error {
	if f.createSessionFunc != nil {
		return f.createSessionFunc(ctx, s)
	}
	return nil
}

func (f *fakeRepo) ListPomodoros(ctx context.Context) ([]model.PomodoroSession, error) {
	if f.listPomodorosFunc != nil {
		return f.listPomodorosFunc(ctx)
	}
	return nil, nil
}

func (f *fakeRepo) CreatePomodoro(ctx context.Context, p model.PomodoroSession) error {
	if f.createPomodoroFunc != nil {
		return f.createPomodoroFunc(ctx, p)
	}
	return nil
}

type fakeStats struct {
	recorded bool
	date     string
	err      error
}

func (f *fakeStats) RecordSession(ctx context.Context, date string, tasksCompleted, correctTasks, studyMinutes int) error {
	f.recorded = true
	f.date = date
	return f.err
}

func TestAddTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Name Rejected Before Store Access", func(t *testing.T) {
		storeTouched := false
		repo := &fakeRepo{createTasksFunc: func(ctx context.Context, tasks []model.StudyTask) error {
			storeTouched = true
			return nil
		}}
		uc := usecase.New(repo, nil, log.NewNop())
		_, err := uc.AddTask(ctx, study.CreateTaskInput{TaskName: "  "})
		if !errors.Is(err, study.ErrMissingTaskName) {
			t.Errorf("expected ErrMissingTaskName, got %v", err)
		}
		if storeTouched {
			t.Errorf("store must not be touched on validation failure")
		}
	})

	t.Run("Generates ID And Normalizes Correctness", func(t *testing.T) {
		var saved model.StudyTask
		repo := &fakeRepo{createTasksFunc: func(ctx context.Context, tasks []model.StudyTask) error {
			saved = tasks[0]
			return nil
		}}
		uc := usecase.New(repo, nil, log.NewNop())
		got, err := uc.AddTask(ctx, study.CreateTaskInput{
			TaskName:           "Stereometria",
			CorrectlyCompleted: "poprawnie",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TaskID == "" {
			t.Errorf("expected generated task_id")
		}
		if saved.CorrectlyCompleted != "Yes" {
			t.Errorf("expected canonical Yes, got %q", saved.CorrectlyCompleted)
		}
	})

	t.Run("Repository Error Propagates", func(t *testing.T) {
		repo := &fakeRepo{createTasksFunc: func(ctx context.Context, tasks []model.StudyTask) error {
			return errors.New("quota exceeded")
		}}
		uc := usecase.New(repo, nil, log.NewNop())
		if _, err := uc.AddTask(ctx, study.CreateTaskInput{TaskName: "x"}); err == nil {
			t.Errorf("expected error")
		}
	})
}

func TestRecentSessions(t *testing.T) {
	ctx := context.Background()
	stored := []model.StudySession{
		{SessionID: "s1"}, {SessionID: "s2"}, {SessionID: "s3"},
	}
	repo := &fakeRepo{listSessionsFunc: func(ctx context.Context) ([]model.StudySession, error) {
		return stored, nil
	}}
	uc := usecase.New(repo, nil, log.NewNop())

	got, err := uc.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].SessionID != "s3" || got[1].SessionID != "s2" {
		t.Errorf("expected newest-first tail [s3 s2], got %v", got)
	}
}

func TestSessionDetails(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{
		listSessionsFunc: func(ctx context.Context) ([]model.StudySession, error) {
			return []model.StudySession{{SessionID: "s1", TotalTasks: 2}}, nil
		},
		listTasksFunc: func(ctx context.Context) ([]model.StudyTask, error) {
			return []model.StudyTask{
				{TaskID: "t1", SessionID: "s1"},
				{TaskID: "t2", SessionID: "other"},
			}, nil
		},
	}
	uc := usecase.New(repo, nil, log.NewNop())

	t.Run("Found With Owned Tasks", func(t *testing.T) {
		out, err := uc.SessionDetails(ctx, "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Tasks) != 1 || out.Tasks[0].TaskID != "t1" {
			t.Errorf("expected only s1 tasks, got %v", out.Tasks)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		if _, err := uc.SessionDetails(ctx, "nope"); !errors.Is(err, study.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestSaveCompleteSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Derives Counters And Records Stats", func(t *testing.T) {
		var savedSession model.StudySession
		var savedTasks []model.StudyTask
		repo := &fakeRepo{
			createSessionFunc: func(ctx context.Context, s model.StudySession) error {
				savedSession = s
				return nil
			},
			createTasksFunc: func(ctx context.Context, tasks []model.StudyTask) error {
				savedTasks = tasks
				return nil
			},
		}
		stats := &fakeStats{}
		uc := usecase.New(repo, stats, log.NewNop())

		out, err := uc.SaveCompleteSession(ctx, study.SaveCompleteSessionInput{
			Session: study.CreateSessionInput{DurationMinutes: 45},
			Tasks: []study.CreateTaskInput{
				{TaskName: "a", CorrectlyCompleted: true},
				{TaskName: "b", CorrectlyCompleted: "źle"},
				{TaskName: "c", CorrectlyCompleted: 1},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if savedSession.TotalTasks != 3 || savedSession.CorrectTasks != 2 {
			t.Errorf("expected derived counters 3/2, got %+v", savedSession)
		}
		if savedSession.AccuracyPercentage != 67 {
			t.Errorf("expected derived accuracy 67, got %d", savedSession.AccuracyPercentage)
		}
		if len(savedTasks) != 3 || out.TasksSaved != 3 {
			t.Errorf("expected 3 tasks saved")
		}
		for _, task := range savedTasks {
			if task.SessionID != savedSession.SessionID {
				t.Errorf("task %s not linked to session", task.TaskID)
			}
		}
		if !stats.recorded {
			t.Errorf("expected daily stats upsert")
		}
	})

	t.Run("Stats Dated By The Injected Clock", func(t *testing.T) {
		stats := &fakeStats{}
		now := func() time.Time { return time.Date(2024, 1, 15, 23, 59, 0, 0, time.Local) }
		uc := usecase.NewWithClock(&fakeRepo{}, stats, log.NewNop(), now)

		if _, err := uc.SaveCompleteSession(ctx, study.SaveCompleteSessionInput{
			Tasks: []study.CreateTaskInput{{TaskName: "a"}},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.date != "2024-01-15" {
			t.Errorf("expected stats dated 2024-01-15, got %q", stats.date)
		}
	})

	t.Run("Stat Failure Is Soft", func(t *testing.T) {
		repo := &fakeRepo{}
		stats := &fakeStats{err: errors.New("stats sheet gone")}
		uc := usecase.New(repo, stats, log.NewNop())
		if _, err := uc.SaveCompleteSession(ctx, study.SaveCompleteSessionInput{
			Tasks: []study.CreateTaskInput{{TaskName: "a"}},
		}); err != nil {
			t.Errorf("stat upsert failure must not fail the save: %v", err)
		}
	})
}
