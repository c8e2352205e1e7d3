// Package server exposes the recommender over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/job-recommender/internal/apperror"
	"github.com/spigell/job-recommender/internal/jobboard"
	"github.com/spigell/job-recommender/internal/service"
)

const (
	shutdownTimeout = 10 * time.Second

	RequestIDHeader = "X-Request-ID"
)

type recommender interface {
	Recommend(ctx context.Context, req service.Request) (*service.Response, error)
}

type Handler struct {
	recommender recommender
	logger      *zap.Logger
}

type recommendationRequest struct {
	Profile  map[string]any `json:"profile"`
	Identity map[string]any `json:"identity"`
	Jobs     []any          `json:"jobs"`
}

// NewRouter builds the gin engine with the API routes registered under /api.
func NewRouter(rec recommender, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{recommender: rec, logger: logger}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger), ErrorMiddleware(logger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.POST("/recommendations", h.Recommend)
	}

	return router
}

func (h *Handler) Recommend(c *gin.Context) {
	var body recommendationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for recommendations", err))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(apperror.NewInvalidInput("limit must be an integer", err))
			return
		}
		limit = n
	}

	req, err := toServiceRequest(body, limit)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.recommender.Recommend(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func toServiceRequest(body recommendationRequest, limit int) (service.Request, error) {
	var profileRaw any
	if body.Profile != nil {
		profileRaw = body.Profile
	}
	profile, err := jobboard.DecodeProfile(profileRaw)
	if err != nil {
		return service.Request{}, apperror.NewInvalidInput("malformed profile", err)
	}

	var identityRaw any
	if body.Identity != nil {
		identityRaw = body.Identity
	}
	identity, err := jobboard.DecodeIdentity(identityRaw)
	if err != nil {
		return service.Request{}, apperror.NewInvalidInput("malformed identity", err)
	}

	var jobsRaw any
	if body.Jobs != nil {
		jobsRaw = body.Jobs
	}
	jobs, err := jobboard.DecodeJobs(jobsRaw)
	if err != nil {
		return service.Request{}, apperror.NewInvalidInput("malformed jobs", err)
	}

	return service.Request{Profile: profile, Identity: identity, Jobs: jobs.Items, Limit: limit}, nil
}

// ErrorMiddleware renders the last error attached to the context.
func ErrorMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		} else {
			logger.Debug("request rejected", zap.String("path", c.FullPath()), zap.Error(err))
		}

		c.JSON(status, apperror.ToJSON(err))
	}
}

// RequestLogger tags every request with an id, taken from the X-Request-ID
// header when the caller sends one, and logs it once the request is served.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		c.Next()

		logger.Info("http request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// Run serves handler on addr until ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", zap.String("addr", addr))
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down server")
	return srv.Shutdown(shutdownCtx)
}
