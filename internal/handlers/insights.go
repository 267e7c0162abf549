package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Health status distribution
// @Description  Classifies every reading of the trailing window and counts the labels. All four labels are always present.
// @Tags         insights
// @Produce      json
// @Param        id     path   string  true   "Location id"
// @Param        end    query  string  false  "Window end; defaults to now"
// @Param        hours  query  int     false  "Horizon in hours"  default(24)
// @Success      200  {object}  map[string]interface{}  "total, distribution"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/locations/{id}/distribution [get]
func (h *Handler) statusDistribution(c *gin.Context) {
	end, ok := h.parseTimeQuery(c, "end")
	if !ok {
		return
	}
	hours, ok := h.parseIntQuery(c, "hours", defaultHorizonHours)
	if !ok {
		return
	}

	dist, err := h.services.Insight.StatusDistribution(c.Param("id"), end, hours)
	if err != nil {
		h.logAndJSONError(c, errGetDistribution, "distribution_failed", err, "location", c.Param("id"))
		return
	}
	total := 0
	for _, n := range dist {
		total += n
	}
	c.JSON(http.StatusOK, gin.H{
		"total":        total,
		"distribution": dist,
	})
}

// @Summary      Environmental impact estimate
// @Tags         insights
// @Produce      json
// @Param        id  path   string  true   "Location id"
// @Param        at  query  string  false  "Instant; defaults to now"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/locations/{id}/impact [get]
func (h *Handler) impact(c *gin.Context) {
	at, ok := h.parseTimeQuery(c, "at")
	if !ok {
		return
	}
	report, err := h.services.Insight.Impact(c.Param("id"), at)
	if err != nil {
		h.logAndJSONError(c, errGetImpact, "impact_failed", err, "location", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, report)
}
