package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"study-tracker/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.rateLimitPerMin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.setupDomains(context.Background()); err != nil {
		return err
	}
	srv.registerExecRoutes(mw)

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.CORS())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerExecRoutes binds the action-dispatch surface and the bootstrap
// sequence. Rate limiting applies only here; system routes stay unmetered.
func (srv *HTTPServer) registerExecRoutes(mw middleware.Middleware) {
	exec := srv.gin.Group("/exec", mw.RateLimit())
	exec.GET("", srv.execRead)
	exec.POST("", srv.execWrite)

	srv.gin.GET("/bootstrap", mw.RateLimit(), srv.runBootstrap)
	srv.gin.GET("/bootstrap/status", srv.bootstrapStatus)
}
