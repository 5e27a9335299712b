package http

import (
	"context"

	"study-tracker/internal/dispatch"
)

func includeInactive(req dispatch.Request) bool {
	switch req.Param("include_inactive") {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

func (h *handler) listSubjects(ctx context.Context, req dispatch.Request) (any, error) {
	subjects, err := h.uc.ListSubjects(ctx, includeInactive(req))
	if err != nil {
		h.l.Errorf(ctx, "catalog.http.listSubjects: %v", err)
		return nil, err
	}
	return subjects, nil
}

func (h *handler) getSubject(ctx context.Context, req dispatch.Request) (any, error) {
	subject, err := h.uc.GetSubject(ctx, req.Param("name"))
	if err != nil {
		h.l.Errorf(ctx, "catalog.http.getSubject: %v", err)
		return nil, err
	}
	return subject, nil
}

func (h *handler) addSubject(ctx context.Context, req dispatch.Request) (any, error) {
	var body createSubjectReq
	if err := req.Bind(&body); err != nil {
		return nil, err
	}
	subject, err := h.uc.AddSubject(ctx, body.toInput())
	if err != nil {
		h.l.Errorf(ctx, "catalog.http.addSubject: %v", err)
		return nil, err
	}
	return subject, nil
}

func (h *handler) deleteSubject(ctx context.Context, req dispatch.Request) (any, error) {
	if err := h.uc.DeleteSubject(ctx, req.Param("name")); err != nil {
		h.l.Errorf(ctx, "catalog.http.deleteSubject: %v", err)
		return nil, err
	}
	return map[string]string{"deleted": req.Param("name")}, nil
}

func (h *handler) listCategories(ctx context.Context, req dispatch.Request) (any, error) {
	categories, err := h.uc.ListCategories(ctx, includeInactive(req))
	if err != nil {
		h.l.Errorf(ctx, "catalog.http.listCategories: %v", err)
		return nil, err
	}
	return categories, nil
}

func (h *handler) categoriesBySubject(ctx context.Context, req dispatch.Request) (any, error) {
	categories, err := h.uc.CategoriesBySubject(ctx, req.Param("subject"))
	if err != nil {
		h.l.Errorf(ctx, "catalog.http.categoriesBySubject: %v", err)
		return nil, err
	}
	return categories, nil
}

func (h *handler) getCategory(ctx context.Context, req dispatch.Request) (any, error) {
	category, err := h.uc.GetCategory(ctx, req.Param("name"))
	if err != nil {
		h.l.Errorf(ctx, "catalog.http.getCategory: %v", err)
		return nil, err
	}
	return category, nil
}

func (h *handler) addCategory(ctx context.Context, req dispatch.Request) (any, error) {
	var body createCategoryReq
	if err := req.Bind(&body); err != nil {
		return nil, err
	}
	category, err := h.uc.AddCategory(ctx, body.toInput())
	if err != nil {
		h.l.Errorf(ctx, "catalog.http.addCategory: %v", err)
		return nil, err
	}
	return category, nil
}

func (h *handler) deleteCategory(ctx context.Context, req dispatch.Request) (any, error) {
	if err := h.uc.DeleteCategory(ctx, req.Param("name")); err != nil {
		h.l.Errorf(ctx, "catalog.http.deleteCategory: %v", err)
		return nil, err
	}
	return map[string]string{"deleted": req.Param("name")}, nil
}
