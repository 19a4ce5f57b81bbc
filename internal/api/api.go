// Package api implements the HTTP surface of the dictionary lookup
// service: /chars/, /chars-table/, /list-langs/ plus operational
// endpoints.
package api

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mcpdict/mcpdict-go/internal/conf"
	"github.com/mcpdict/mcpdict-go/internal/datastore"
	"github.com/mcpdict/mcpdict-go/internal/errors"
	"github.com/mcpdict/mcpdict-go/internal/logging"
	"github.com/mcpdict/mcpdict-go/internal/observability"
)

// Controller manages the API routes and handlers.
type Controller struct {
	Echo     *echo.Echo
	DS       datastore.Interface
	Settings *conf.Settings

	// Version is the store's build version stamp, loaded once before the
	// controller is constructed and immutable afterwards.
	Version string

	apiLogger *slog.Logger
	metrics   *observability.Metrics
}

// New creates the controller and registers all routes.
func New(settings *conf.Settings, ds datastore.Interface, version string, metrics *observability.Metrics) *Controller {
	c := &Controller{
		Echo:      echo.New(),
		DS:        ds,
		Settings:  settings,
		Version:   version,
		apiLogger: logging.ForService("api"),
		metrics:   metrics,
	}

	c.Echo.HideBanner = true
	c.Echo.HidePort = true
	c.Echo.Use(middleware.Recover())
	c.Echo.Use(c.metricsMiddleware)

	c.initRoutes()
	return c
}

// initRoutes registers the HTTP surface. The three data endpoints keep
// their historical paths, trailing slash included.
func (c *Controller) initRoutes() {
	c.Echo.GET("/chars/", c.HandleChars)
	c.Echo.GET("/chars-table/", c.HandleCharsTable)
	c.Echo.GET("/list-langs/", c.HandleListLangs)

	c.Echo.GET("/healthz", c.HandleHealthz)
	if c.metrics != nil {
		c.Echo.GET("/metrics", echo.WrapHandler(c.metrics.Handler()))
	}
}

// Start begins serving HTTP requests, blocking until shutdown.
func (c *Controller) Start() error {
	addr := net.JoinHostPort(c.Settings.WebServer.Host, c.Settings.WebServer.Port)
	c.apiLogger.Info("starting HTTP server", "addr", addr, "build_version", c.Version)
	return c.Echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (c *Controller) Shutdown(ctx context.Context) error {
	return c.Echo.Shutdown(ctx)
}

// metricsMiddleware records request count and duration per route.
func (c *Controller) metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if c.metrics == nil {
			return next(ctx)
		}
		start := time.Now()
		err := next(ctx)
		status := ctx.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}
		c.metrics.ObserveRequest(ctx.Path(), status, time.Since(start).Seconds())
		return err
	}
}

// ErrorResponse is the error body returned by all endpoints. Error carries
// only a short machine-safe message; internal detail stays in the logs
// keyed by the correlation id.
type ErrorResponse struct {
	Error         string `json:"error"`
	Code          int    `json:"code"`
	CorrelationID string `json:"correlation_id"`
}

// generateCorrelationID creates a unique identifier for error tracking.
func generateCorrelationID() string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 8

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "ERR-RAND"
	}
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return string(b)
}

// HandleError logs the full error and returns the sanitized response.
// message is what the client sees; err (with driver detail) is only
// logged.
func (c *Controller) HandleError(ctx echo.Context, err error, message string, code int) error {
	resp := &ErrorResponse{
		Error:         message,
		Code:          code,
		CorrelationID: generateCorrelationID(),
	}

	attrs := []any{
		"correlation_id", resp.CorrelationID,
		"message", message,
		"code", code,
		"path", ctx.Request().URL.Path,
		"ip", ctx.RealIP(),
	}
	if err != nil {
		attrs = append(attrs, "error", err.Error(), "category", errors.CategoryOf(err))
	}
	c.apiLogger.Error("API error", attrs...)

	return ctx.JSON(code, resp)
}

// handleStoreError maps a datastore failure onto the HTTP contract:
// client input categories become 400 with the constraint named, anything
// else is a 500 identifying only the error category.
func (c *Controller) handleStoreError(ctx echo.Context, err error) error {
	switch errors.CategoryOf(err) {
	case errors.CategoryValidation, errors.CategoryLimit:
		return c.HandleError(ctx, err, err.Error(), http.StatusBadRequest)
	case errors.CategoryNotReady:
		return c.HandleError(ctx, err, "service not ready", http.StatusInternalServerError)
	case errors.CategoryTimeout:
		return c.HandleError(ctx, err, "store busy; retry", http.StatusInternalServerError)
	case errors.CategoryDatabase, errors.CategoryJSONDecode:
		return c.HandleError(ctx, err,
			fmt.Sprintf("database error: %s", errors.CategoryOf(err)), http.StatusInternalServerError)
	default:
		return c.HandleError(ctx, err, "internal server error", http.StatusInternalServerError)
	}
}

// respondJSONBytes writes a pre-encoded JSON payload. The envelope encoder
// owns the byte stream so repeated identical requests stay byte-identical.
func respondJSONBytes(ctx echo.Context, payload []byte) error {
	return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, payload)
}
