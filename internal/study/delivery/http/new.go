package http

import (
	"study-tracker/internal/dispatch"
	"study-tracker/internal/study"
	"study-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc study.UseCase
}

// New creates the study delivery layer.
func New(l log.Logger, uc study.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// Register binds the study actions, aliases included.
func (h *handler) Register(reg *dispatch.Registry) {
	reg.Read(h.listTasks, "getTasks", "getStudyTasks")
	reg.Read(h.listSessions, "getStudySessions")
	reg.Read(h.recentSessions, "getRecentSessions")
	reg.Read(h.sessionDetails, "getSessionDetails")
	reg.Read(h.listPomodoros, "getPomodoroSessions")

	reg.Write(h.addTask, "addTask", "addStudyTask")
	reg.Write(h.addSession, "addStudySession")
	reg.Write(h.saveCompleteSession, "saveCompleteStudySession")
	reg.Write(h.addPomodoro, "addPomodoroSession")
}
