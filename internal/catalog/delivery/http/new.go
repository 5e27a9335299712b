package http

import (
	"study-tracker/internal/catalog"
	"study-tracker/internal/dispatch"
	"study-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc catalog.UseCase
}

// New creates the catalog delivery layer.
func New(l log.Logger, uc catalog.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// Register binds the catalog actions. deleteSubject and deleteCategory
// dispatch on GET: the legacy client issues them as reads and the deletes
// are soft, so the quirk is preserved for compatibility.
func (h *handler) Register(reg *dispatch.Registry) {
	reg.Read(h.listSubjects, "getSubjects")
	reg.Read(h.getSubject, "getSubject")
	reg.Read(h.listCategories, "getCategories")
	reg.Read(h.categoriesBySubject, "getCategoriesBySubject")
	reg.Read(h.getCategory, "getCategory")
	reg.Read(h.deleteSubject, "deleteSubject")
	reg.Read(h.deleteCategory, "deleteCategory")

	reg.Write(h.addSubject, "addSubject")
	reg.Write(h.addCategory, "addCategory")
}
