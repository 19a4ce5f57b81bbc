package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcpdict/mcpdict-go/internal/datastore"
	"github.com/mcpdict/mcpdict-go/internal/reading"
)

// HandleChars serves GET /chars/?chars=<string>: the grouped form, one
// [字頭, detailList] entry per queried character that has any reading.
func (c *Controller) HandleChars(ctx echo.Context) error {
	return c.handleLookup(ctx, func(rows []datastore.ReadingRecord, chars []string) any {
		return reading.ShapeGrouped(rows)
	})
}

// HandleCharsTable serves GET /chars-table/?chars=<string>: the pivoted
// form, one row per language and one column per queried character.
func (c *Controller) HandleCharsTable(ctx echo.Context) error {
	return c.handleLookup(ctx, func(rows []datastore.ReadingRecord, chars []string) any {
		return reading.ShapePivot(rows, chars)
	})
}

// handleLookup is the shared lookup path; shape selects the output form.
// Validation lives here, shaping stays pure, and both endpoints share one
// store query.
func (c *Controller) handleLookup(ctx echo.Context, shape func([]datastore.ReadingRecord, []string) any) error {
	params := ctx.QueryParams()
	if !params.Has("chars") {
		return c.HandleError(ctx, nil, "chars is required", http.StatusBadRequest)
	}

	chars := reading.DedupChars(params.Get("chars"))
	if len(chars) == 0 {
		// Empty or whitespace-only input is not an error: an empty data
		// array under the current version.
		return c.respondEnvelope(ctx, nil)
	}
	if max := c.Settings.Lookup.MaxChars; len(chars) > max {
		return c.HandleError(ctx, nil,
			fmt.Sprintf("too many chars; max=%d", max), http.StatusBadRequest)
	}
	if c.metrics != nil {
		c.metrics.LookupChars.Observe(float64(len(chars)))
	}

	rows, err := c.DS.LookupReadings(ctx.Request().Context(), chars)
	if err != nil {
		return c.handleStoreError(ctx, err)
	}

	return c.respondEnvelope(ctx, shape(rows, chars))
}

// respondEnvelope wraps data in the versioned envelope and writes it.
func (c *Controller) respondEnvelope(ctx echo.Context, data any) error {
	if c.Version == "" {
		return c.HandleError(ctx, nil, "build version not initialized", http.StatusInternalServerError)
	}
	payload, err := reading.EncodeEnvelope(c.Version, data)
	if err != nil {
		return c.HandleError(ctx, err, "internal server error", http.StatusInternalServerError)
	}
	return respondJSONBytes(ctx, payload)
}
