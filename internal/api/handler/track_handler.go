package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trailatlas/trails-api/internal/core/geo"
	"github.com/trailatlas/trails-api/internal/core/ports"
)

// TrackHandler serves hiking-route searches. These routes are public.
type TrackHandler struct {
	search ports.RouteSearchService
}

func NewTrackHandler(search ports.RouteSearchService) *TrackHandler {
	return &TrackHandler{search: search}
}

// GetByID fetches a single route relation.
//
// @Summary      Get a route by relation id
// @Tags         tracks
// @Produce      json
// @Param        id   path      string  true  "Route relation id"
// @Success      200  {object}  trackEnvelope
// @Failure      500  {object}  trackEnvelope
// @Router       /tracks/{id} [get]
func (h *TrackHandler) GetByID(c echo.Context) error {
	data, err := h.search.SearchByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, trackEnvelope{
			Response: map[string]any{"error": err.Error()},
			Status:   "error",
		})
	}

	return c.JSON(http.StatusOK, trackEnvelope{
		Response: map[string]any{"data": data},
		Status:   "success",
	})
}

// Search finds routes around a point. Missing parameters fall back to
// defaults and an oversized radius is clamped, never rejected.
//
// @Summary      Search routes around a point
// @Tags         tracks
// @Produce      json
// @Param        radius  query     number  false  "Search radius in meters (max 10000, default 5000)"
// @Param        lat     query     number  false  "Latitude"
// @Param        long    query     number  false  "Longitude"
// @Success      200     {object}  trackEnvelope
// @Failure      500     {object}  trackEnvelope
// @Router       /tracks [get]
func (h *TrackHandler) Search(c echo.Context) error {
	q := geo.NormalizeAreaQuery(
		c.QueryParam("radius"),
		c.QueryParam("lat"),
		c.QueryParam("long"),
	)

	data, err := h.search.SearchByArea(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, trackEnvelope{
			Response: map[string]any{"error": err.Error()},
			Status:   "error",
		})
	}

	return c.JSON(http.StatusOK, trackEnvelope{
		Response: map[string]any{"data": data},
		Status:   "success",
	})
}
