package http

import (
	"context"

	"study-tracker/internal/dispatch"
)

func (h *handler) listAchievements(ctx context.Context, req dispatch.Request) (any, error) {
	achievements, err := h.uc.ListAchievements(ctx)
	if err != nil {
		h.l.Errorf(ctx, "progress.http.listAchievements: %v", err)
		return nil, err
	}
	return achievements, nil
}

func (h *handler) updateAchievement(ctx context.Context, req dispatch.Request) (any, error) {
	var body updateAchievementReq
	if err := req.Bind(&body); err != nil {
		return nil, err
	}
	achievement, err := h.uc.UpdateAchievement(ctx, body.toInput())
	if err != nil {
		h.l.Errorf(ctx, "progress.http.updateAchievement: %v", err)
		return nil, err
	}
	return achievement, nil
}

func (h *handler) listSettings(ctx context.Context, req dispatch.Request) (any, error) {
	settings, err := h.uc.ListSettings(ctx)
	if err != nil {
		h.l.Errorf(ctx, "progress.http.listSettings: %v", err)
		return nil, err
	}
	return settings, nil
}

func (h *handler) updateSetting(ctx context.Context, req dispatch.Request) (any, error) {
	var body updateSettingReq
	if err := req.Bind(&body); err != nil {
		return nil, err
	}
	setting, err := h.uc.UpdateSetting(ctx, body.Key, body.Value)
	if err != nil {
		h.l.Errorf(ctx, "progress.http.updateSetting: %v", err)
		return nil, err
	}
	return setting, nil
}

func (h *handler) listUserStats(ctx context.Context, req dispatch.Request) (any, error) {
	stats, err := h.uc.ListUserStats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "progress.http.listUserStats: %v", err)
		return nil, err
	}
	return stats, nil
}

func (h *handler) todayStats(ctx context.Context, req dispatch.Request) (any, error) {
	stat, err := h.uc.TodayStats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "progress.http.todayStats: %v", err)
		return nil, err
	}
	return stat, nil
}

func (h *handler) addUserStat(ctx context.Context, req dispatch.Request) (any, error) {
	var body addUserStatReq
	if err := req.Bind(&body); err != nil {
		return nil, err
	}
	stat, err := h.uc.AddUserStat(ctx, body.toInput())
	if err != nil {
		h.l.Errorf(ctx, "progress.http.addUserStat: %v", err)
		return nil, err
	}
	return stat, nil
}
