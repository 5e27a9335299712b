package http

import (
	"context"

	"study-tracker/internal/analytics"
	"study-tracker/internal/dispatch"
	"study-tracker/internal/model"
	"study-tracker/pkg/log"
)

// TaskSource supplies the raw task batch the snapshot is computed from.
type TaskSource interface {
	ListTasks(ctx context.Context) ([]model.StudyTask, error)
}

// SettingSource supplies the settings map, read for the exam_date key.
type SettingSource interface {
	ListSettings(ctx context.Context) (map[string]string, error)
}

type handler struct {
	l        log.Logger
	uc       analytics.UseCase
	tasks    TaskSource
	settings SettingSource
}

// New creates the analytics delivery layer.
func New(l log.Logger, uc analytics.UseCase, tasks TaskSource, settings SettingSource) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		tasks:    tasks,
		settings: settings,
	}
}

// Register binds the analytics actions.
func (h *handler) Register(reg *dispatch.Registry) {
	reg.Read(h.snapshot, "getAnalytics", "getAnalyticsData")
}
