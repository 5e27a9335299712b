package httpserver

import (
	"context"

	analyticsHTTP "study-tracker/internal/analytics/delivery/http"
	analyticsUC "study-tracker/internal/analytics/usecase"
	bootstrapUC "study-tracker/internal/bootstrap/usecase"
	catalogHTTP "study-tracker/internal/catalog/delivery/http"
	catalogRepo "study-tracker/internal/catalog/repository/sheets"
	catalogUC "study-tracker/internal/catalog/usecase"
	progressHTTP "study-tracker/internal/progress/delivery/http"
	progressRepo "study-tracker/internal/progress/repository/sheets"
	progressUC "study-tracker/internal/progress/usecase"
	storeHTTP "study-tracker/internal/store/delivery/http"
	storeUC "study-tracker/internal/store/usecase"
	studyHTTP "study-tracker/internal/study/delivery/http"
	studyRepo "study-tracker/internal/study/repository/sheets"
	studyUC "study-tracker/internal/study/usecase"
)

// setupDomains builds repository → usecase → delivery for every domain and
// registers the action handlers. Progress comes first: the study domain
// records daily counters through it.
func (srv *HTTPServer) setupDomains(ctx context.Context) error {
	// Progress: achievements, settings, daily stats.
	progRepo := progressRepo.New(srv.sheets, srv.l)
	progUC := progressUC.New(progRepo, srv.l)
	progressHTTP.New(srv.l, progUC).Register(srv.registry)

	// Study: tasks, study sessions, pomodoros.
	stdRepo := studyRepo.New(srv.sheets, srv.l)
	stdUC := studyUC.New(stdRepo, progUC, srv.l)
	studyHTTP.New(srv.l, stdUC).Register(srv.registry)

	// Catalog: subjects and categories, soft-delete only.
	catRepo := catalogRepo.New(srv.sheets, srv.cacheSize, srv.cacheTTL, srv.l)
	catUC := catalogUC.New(catRepo, srv.l)
	catalogHTTP.New(srv.l, catUC).Register(srv.registry)

	// Analytics: derived snapshots over the task batch.
	anaUC := analyticsUC.New(srv.l)
	analyticsHTTP.New(srv.l, anaUC, stdUC, progUC).Register(srv.registry)

	// Generic row update.
	storeHTTP.New(srv.l, storeUC.New(srv.sheets, srv.l)).Register(srv.registry)

	// Bootstrap sequencer over the assembled usecases.
	srv.sequencer = bootstrapUC.New(bootstrapSources{
		catalog:  catUC,
		study:    stdUC,
		progress: progUC,
	}, srv.l)

	srv.l.Infof(ctx, "httpserver: all domains registered")
	return nil
}
