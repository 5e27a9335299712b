package http

import (
	"study-tracker/internal/dispatch"
	"study-tracker/internal/progress"
	"study-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc progress.UseCase
}

// New creates the progress delivery layer.
func New(l log.Logger, uc progress.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// Register binds the achievements, settings and stats actions.
func (h *handler) Register(reg *dispatch.Registry) {
	reg.Read(h.listAchievements, "getAchievements")
	reg.Read(h.listSettings, "getSettings")
	reg.Read(h.listUserStats, "getUserStats")
	reg.Read(h.todayStats, "getTodayStats")

	reg.Write(h.updateAchievement, "updateAchievement")
	reg.Write(h.updateSetting, "updateSetting")
	reg.Write(h.addUserStat, "addUserStat")
}
