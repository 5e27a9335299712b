package http

import (
	"context"

	"study-tracker/internal/dispatch"
	"study-tracker/internal/store"
	"study-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc store.UseCase
}

// New creates the generic update delivery layer.
func New(l log.Logger, uc store.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// Register binds the generic row-update action.
func (h *handler) Register(reg *dispatch.Registry) {
	reg.Write(h.update, "update")
}

func (h *handler) update(ctx context.Context, req dispatch.Request) (any, error) {
	var body store.UpdateRowInput
	if err := req.Bind(&body); err != nil {
		return nil, err
	}
	if err := h.uc.UpdateRow(ctx, body); err != nil {
		h.l.Errorf(ctx, "store.http.update: %v", err)
		return nil, err
	}
	return map[string]string{"updated": body.MatchValue}, nil
}
