package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/catalog-service/pkg/session"
)

const visitsKey = "num_visits"

// Index godoc
// @Summary      landing page counts and the caller's visit counter
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  model.Stats
// @Router       /catalog/ [get]
func (h *Handler) Index(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	sess := session.FromContext(c)
	visits := sess.GetInt(visitsKey, 0)
	sess.Set(visitsKey, visits+1)
	stats.NumVisits = visits
	return c.JSON(http.StatusOK, stats)
}
