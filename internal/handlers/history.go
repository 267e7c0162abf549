package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultHorizonHours    = 24
	defaultIntervalMinutes = 15
)

// @Summary      Generated sensor history
// @Description  Regenerates the trailing window for a site. The same end time always reproduces the same series, watering and maintenance events included.
// @Tags         history
// @Produce      json
// @Param        id            path   string  true   "Location id"
// @Param        end           query  string  false  "Window end (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'); defaults to now"
// @Param        hours         query  int     false  "Horizon in hours"     default(24)
// @Param        interval_min  query  int     false  "Interval in minutes"  default(15)
// @Success      200  {object}  map[string]interface{}  "count, series"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/locations/{id}/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	end, ok := h.parseTimeQuery(c, "end")
	if !ok {
		return
	}
	hours, ok := h.parseIntQuery(c, "hours", defaultHorizonHours)
	if !ok {
		return
	}
	interval, ok := h.parseIntQuery(c, "interval_min", defaultIntervalMinutes)
	if !ok {
		return
	}

	series, err := h.services.History.Series(c.Param("id"), end, hours, interval)
	if err != nil {
		h.logAndJSONError(c, errGetHistory, "history_failed", err, "location", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(series.Readings),
		"series": series,
	})
}

// @Summary      Export history as CSV
// @Tags         history
// @Produce      text/csv
// @Param        id            path   string  true   "Location id"
// @Param        end           query  string  false  "Window end; defaults to now"
// @Param        hours         query  int     false  "Horizon in hours"     default(24)
// @Param        interval_min  query  int     false  "Interval in minutes"  default(15)
// @Success      200  {string}  string  "CSV rows"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/locations/{id}/history/export [get]
func (h *Handler) exportHistory(c *gin.Context) {
	end, ok := h.parseTimeQuery(c, "end")
	if !ok {
		return
	}
	hours, ok := h.parseIntQuery(c, "hours", defaultHorizonHours)
	if !ok {
		return
	}
	interval, ok := h.parseIntQuery(c, "interval_min", defaultIntervalMinutes)
	if !ok {
		return
	}

	series, err := h.services.History.Series(c.Param("id"), end, hours, interval)
	if err != nil {
		h.logAndJSONError(c, errExportHistory, "history_export_failed", err, "location", c.Param("id"))
		return
	}

	filename := fmt.Sprintf("moss_%s_%s.csv", series.LocationID, time.Now().UTC().Format(layoutDate))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
	if err := series.WriteCSV(c.Writer); err != nil {
		// Headers are gone already; all that is left is logging.
		if h.log != nil {
			h.log.Errorw("history_export_write_failed", "err", err, "location", series.LocationID)
		}
	}
}

// @Summary      Weekly summary
// @Description  Rolls the last seven generated days into daily averages, oldest first.
// @Tags         history
// @Produce      json
// @Param        id   path   string  true   "Location id"
// @Param        end  query  string  false  "Last summarized day; defaults to today"
// @Success      200  {object}  map[string]interface{}  "count, days"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/locations/{id}/summary/weekly [get]
func (h *Handler) weeklySummary(c *gin.Context) {
	end, ok := h.parseTimeQuery(c, "end")
	if !ok {
		return
	}
	days, err := h.services.History.WeeklySummary(c.Param("id"), end)
	if err != nil {
		h.logAndJSONError(c, errGetSummary, "summary_failed", err, "location", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(days),
		"days":  days,
	})
}
