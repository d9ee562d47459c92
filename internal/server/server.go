// Package server exposes scraping and playlist generation over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"acexspf/internal/category"
	"acexspf/internal/extract"
	"acexspf/internal/logging"
	"acexspf/internal/playlist"
)

// ShutdownTimeout bounds how long in-flight requests may finish after the
// server is asked to stop.
const ShutdownTimeout = 30 * time.Second

// Server holds the dependencies shared by the handlers.
type Server struct {
	extractor  extract.Extractor
	classifier category.Classifier
	opts       playlist.Options
}

// New creates a Server. A nil classifier falls back to the default tokens.
func New(extractor extract.Extractor, classifier category.Classifier, opts playlist.Options) *Server {
	if classifier == nil {
		classifier = category.NewTokenClassifier(nil)
	}
	if opts.Classifier == nil {
		opts.Classifier = classifier
	}
	return &Server{extractor: extractor, classifier: classifier, opts: opts}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), Logger(), Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/scrape", s.Scrape)
	api.POST("/generate", s.Generate)
	api.POST("/download", s.Download)

	return r
}

// Run serves handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Warn("server shutdown error: %v", err)
		return err
	}
	logging.Info("HTTP server stopped")
	return nil
}
