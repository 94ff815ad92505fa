package routes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	_ "cleaning_assignments/docs"
	"cleaning_assignments/internal/adapter/http/handlers"
	"cleaning_assignments/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type Handlers struct {
	Assignment   *handlers.AssignmentHandler
	Quote        *handlers.QuoteHandler
	Match        *handlers.MatchHandler
	Sweep        *handlers.SweepHandler
	Notification *handlers.NotificationHandler
}

func NewHandlers(a *app.App) Handlers {
	return Handlers{
		Assignment:   handlers.NewAssignmentHandler(a.Assignments),
		Quote:        handlers.NewQuoteHandler(a.Quotes, a.Assignments),
		Match:        handlers.NewMatchHandler(a.Matching),
		Sweep:        handlers.NewSweepHandler(a.Sweeper),
		Notification: handlers.NewNotificationHandler(a.Notifications),
	}
}

// NewRouter registers every route on a fresh engine.
func NewRouter(h Handlers, logger *slog.Logger, metrics http.Handler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAssignmentRoutes(v1, h)

	addInternalRoutes(router.Group("/internal"), h.Sweep)
	return router
}

// Run serves the API until ctx is done. When SWEEP_INTERVAL is set the
// expiry sweeper runs alongside the server and stops with it.
func Run(ctx context.Context, a *app.App) error {
	if a.Config.GinMode != "" {
		gin.SetMode(a.Config.GinMode)
	}
	router := NewRouter(NewHandlers(a), a.Logger, promhttp.Handler())
	srv := &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.Info("[http] listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		a.Logger.Info("[http] shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	if a.Config.SweepInterval > 0 {
		g.Go(func() error {
			if err := a.Sweeper.Run(gctx, a.Config.SweepInterval); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

func setMiddlewares(router *gin.Engine, logger *slog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[http] recovered from panic", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(logErrors(logger))
}

// logErrors reports the causes handlers attach with c.Error.
func logErrors(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		for _, err := range c.Errors {
			logger.ErrorContext(c.Request.Context(), "[http] request failed",
				"method", c.Request.Method, "path", c.FullPath(), "status", c.Writer.Status(), "err", err.Err)
		}
	}
}
