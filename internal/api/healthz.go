package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the /healthz body.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HandleHealthz reports liveness. It touches the store with the cheapest
// possible read so a vanished or locked-up dictionary file turns the
// probe unhealthy.
func (c *Controller) HandleHealthz(ctx echo.Context) error {
	if _, err := c.DS.BuildVersion(ctx.Request().Context()); err != nil {
		c.apiLogger.Warn("health probe failed", "error", err.Error())
		return ctx.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:  "unhealthy",
			Version: c.Version,
		})
	}
	return ctx.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: c.Version,
	})
}
