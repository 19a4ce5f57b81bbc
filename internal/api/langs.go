package api

import (
	"github.com/labstack/echo/v4"

	"github.com/mcpdict/mcpdict-go/internal/datastore"
)

// HandleListLangs serves GET /list-langs/: the fixed-width language
// reference table, one positional row per public language in stable id
// order.
func (c *Controller) HandleListLangs(ctx echo.Context) error {
	langs, err := c.DS.ListLanguages(ctx.Request().Context())
	if err != nil {
		return c.handleStoreError(ctx, err)
	}
	if langs == nil {
		langs = []datastore.LanguageRow{}
	}
	return c.respondEnvelope(ctx, langs)
}
