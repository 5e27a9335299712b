package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"study-tracker/internal/bootstrap"
	"study-tracker/internal/dispatch"
	"study-tracker/pkg/gsheets"
	"study-tracker/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	sheets          gsheets.ISheets
	spreadsheetID   string
	cacheSize       int
	cacheTTL        time.Duration
	rateLimitPerMin int

	registry  *dispatch.Registry
	sequencer bootstrap.Sequencer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Sheets          gsheets.ISheets
	SpreadsheetID   string
	CacheSize       int
	CacheTTL        time.Duration
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		sheets:          cfg.Sheets,
		spreadsheetID:   cfg.SpreadsheetID,
		cacheSize:       cfg.CacheSize,
		cacheTTL:        cfg.CacheTTL,
		rateLimitPerMin: cfg.RateLimitPerMin,
		registry:        dispatch.NewRegistry(),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sheets == nil {
		return errors.New("sheets client is required")
	}
	return nil
}

// Run wires all routes and blocks serving HTTP traffic.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
