package connection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"taskmaster/config"
	"taskmaster/controller/auth"
	"taskmaster/controller/diagnostics"
	"taskmaster/controller/docs"
	"taskmaster/controller/feedback"
	"taskmaster/controller/task"
	"taskmaster/controller/timelog"
	"taskmaster/controller/user"
	"taskmaster/dto"
	"taskmaster/middleware"
	"taskmaster/services"
	"taskmaster/store"
)

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.APIKeyHeader, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// NewRouter wires every route. init may be nil when the schema is only
// created at startup.
func NewRouter(cfg *config.Config, st store.Store, init middleware.SchemaEnsurer, logger *slog.Logger) (*gin.Engine, error) {
	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery(), cors.New(corsConfig(cfg.Server.CORSAllowOrigins)))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	api := router.Group("/api")
	if init != nil && cfg.Database.InitOnRequest {
		api.Use(middleware.EnsureSchema(init))
	}

	// login, docs and diagnostics stay reachable without a key
	auth.LoginController(api, st)
	docs.DocsController(api, cfg.Server.AppURL)
	diagnostics.DebugDBController(api, st)

	lc := services.Lifecycle{Strict: cfg.Lifecycle.Strict}
	gated := api.Group("", middleware.APIKeyMiddleware(cfg.Auth.APIKey))
	user.UserController(gated, st)
	task.TaskController(gated, st, lc)
	timelog.TimeLogController(gated, st, lc)
	feedback.FeedbackController(gated, st)

	return router, nil
}

// StartServer opens the store, prepares the schema and serves until ctx is
// cancelled, then drains in-flight requests.
func StartServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	st, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	initializer := store.NewInitializer(st, cfg.StoreSeed(), logger)
	if err := initializer.EnsureOnce(ctx); err != nil {
		if !cfg.Database.InitOnRequest {
			return fmt.Errorf("init database: %w", err)
		}
		logger.Error("database init failed, retrying on request", "error", err)
	}

	router, err := NewRouter(cfg, st, initializer, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", "addr", srv.Addr, "url", cfg.Server.AppURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
