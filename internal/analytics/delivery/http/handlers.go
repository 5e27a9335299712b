package http

import (
	"context"
	"strings"

	"study-tracker/internal/analytics"
	"study-tracker/internal/dispatch"
)

// parseTimeframe maps the query value onto a known window, defaulting to ALL.
func parseTimeframe(s string) analytics.Timeframe {
	switch analytics.Timeframe(strings.ToUpper(strings.TrimSpace(s))) {
	case analytics.TimeframeWeek:
		return analytics.TimeframeWeek
	case analytics.TimeframeMonth:
		return analytics.TimeframeMonth
	case analytics.TimeframeQuarter:
		return analytics.TimeframeQuarter
	default:
		return analytics.TimeframeAll
	}
}

func (h *handler) snapshot(ctx context.Context, req dispatch.Request) (any, error) {
	tasks, err := h.tasks.ListTasks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "analytics.http.snapshot: list tasks: %v", err)
		return nil, err
	}

	// A settings failure only costs the countdown, never the snapshot.
	examDate := ""
	if settings, err := h.settings.ListSettings(ctx); err != nil {
		h.l.Warnf(ctx, "analytics.http.snapshot: settings unavailable: %v", err)
	} else {
		examDate = settings["exam_date"]
	}

	snapshot := h.uc.Snapshot(ctx, analytics.SnapshotInput{
		Tasks:     tasks,
		Timeframe: parseTimeframe(req.Param("timeframe")),
		ExamDate:  examDate,
	})
	return snapshot, nil
}
