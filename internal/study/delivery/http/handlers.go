package http

import (
	"context"
	"strconv"

	"study-tracker/internal/dispatch"
)

func (h *handler) listTasks(ctx context.Context, req dispatch.Request) (any, error) {
	tasks, err := h.uc.ListTasks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "study.http.listTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

func (h *handler) addTask(ctx context.Context, req dispatch.Request) (any, error) {
	var body createTaskReq
	if err := req.Bind(&body); err != nil {
		return nil, err
	}
	task, err := h.uc.AddTask(ctx, body.toInput())
	if err != nil {
		h.l.Errorf(ctx, "study.http.addTask: %v", err)
		return nil, err
	}
	return task, nil
}

func (h *handler) listSessions(ctx context.Context, req dispatch.Request) (any, error) {
	sessions, err := h.uc.ListSessions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "study.http.listSessions: %v", err)
		return nil, err
	}
	return sessions, nil
}

func (h *handler) addSession(ctx context.Context, req dispatch.Request) (any, error) {
	var body createSessionReq
	if err := req.Bind(&body); err != nil {
		return nil, err
	}
	session, err := h.uc.AddSession(ctx, body.toInput())
	if err != nil {
		h.l.Errorf(ctx, "study.http.addSession: %v", err)
		return nil, err
	}
	return session, nil
}

func (h *handler) recentSessions(ctx context.Context, req dispatch.Request) (any, error) {
	limit, _ := strconv.Atoi(req.Param("limit"))
	sessions, err := h.uc.RecentSessions(ctx, limit)
	if err != nil {
		h.l.Errorf(ctx, "study.http.recentSessions: %v", err)
		return nil, err
	}
	return sessions, nil
}

func (h *handler) sessionDetails(ctx context.Context, req dispatch.Request) (any, error) {
	details, err := h.uc.SessionDetails(ctx, req.Param("session_id"))
	if err != nil {
		h.l.Errorf(ctx, "study.http.sessionDetails: %v", err)
		return nil, err
	}
	return details, nil
}

func (h *handler) saveCompleteSession(ctx context.Context, req dispatch.Request) (any, error) {
	var body saveCompleteSessionReq
	if err := req.Bind(&body); err != nil {
		return nil, err
	}
	output, err := h.uc.SaveCompleteSession(ctx, body.toInput())
	if err != nil {
		h.l.Errorf(ctx, "study.http.saveCompleteSession: %v", err)
		return nil, err
	}
	return output, nil
}

func (h *handler) listPomodoros(ctx context.Context, req dispatch.Request) (any, error) {
	sessions, err := h.uc.ListPomodoros(ctx)
	if err != nil {
		h.l.Errorf(ctx, "study.http.listPomodoros: %v", err)
		return nil, err
	}
	return sessions, nil
}

func (h *handler) addPomodoro(ctx context.Context, req dispatch.Request) (any, error) {
	var body createPomodoroReq
	if err := req.Bind(&body); err != nil {
		return nil, err
	}
	session, err := h.uc.AddPomodoro(ctx, body.toInput())
	if err != nil {
		h.l.Errorf(ctx, "study.http.addPomodoro: %v", err)
		return nil, err
	}
	return session, nil
}
