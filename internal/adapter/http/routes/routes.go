package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "sistema_mdu/docs" // registers the OpenAPI document
	"sistema_mdu/internal/adapter/http/handlers"
	"sistema_mdu/internal/app"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// NewRouter builds the gin engine serving every route of the API.
func NewRouter(a *app.App) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, a.Logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(a.Metrics.Handler()))

	authHandler := handlers.NewAuthHandler(a.Auth)
	addressHandler := handlers.NewAddressHandler(a.Addresses)
	managementHandler := handlers.NewManagementHandler(a.Management)
	statsHandler := handlers.NewStatsHandler(a.Stats)
	transferHandler := handlers.NewImportExportHandler(a.ImportExport)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Rotas autenticadas
	protected := v1.Group("", authHandler.RequireAuth())
	addAddressRoutes(protected, addressHandler)
	addManagementRoutes(protected, managementHandler)
	addStatsRoutes(protected, statsHandler)
	addTransferRoutes(protected, transferHandler)

	return router
}

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, a *app.App) error {
	srv := &http.Server{
		Addr:              a.Config.Addr(),
		Handler:           NewRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
		a.Logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

// requestLogger replaces gin.Logger with one structured line per request.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
