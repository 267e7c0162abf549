package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bhoomi2310/GreenPulse/internal/models"
	"github.com/bhoomi2310/GreenPulse/internal/service"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errGetReading      = "failed to build reading"
	errGetHistory      = "failed to generate history"
	errExportHistory   = "failed to export history"
	errGetSummary      = "failed to build weekly summary"
	errGetDistribution = "failed to build status distribution"
	errGetImpact       = "failed to estimate impact"
)

// Centralized error logging and response. Anything wrapping
// service.ErrConfig is the caller's fault and surfaces as a 400 with the
// real message; everything else is logged and hidden behind a generic 500.
func (h *Handler) logAndJSONError(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	if errors.Is(err, service.ErrConfig) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": userMsg})
}

// snapshotResponse is what the dashboard renders for "now": the reading
// plus everything derived from it.
type snapshotResponse struct {
	Reading         models.SensorReading    `json:"reading"`
	Prediction      models.HealthPrediction `json:"prediction"`
	HealthScore     float64                 `json:"health_score"`
	Recommendations []string                `json:"recommendations"`
}

// buildSnapshot assembles the reading, its classification, the health score
// and the matching recommendations for one site.
func (h *Handler) buildSnapshot(locationID string, at time.Time) (snapshotResponse, error) {
	reading, err := h.services.Simulator.Reading(locationID, at)
	if err != nil {
		return snapshotResponse{}, err
	}
	pred := h.services.Predictor.Predict(reading.Humidity, reading.Light, reading.Moisture)
	return snapshotResponse{
		Reading:         reading,
		Prediction:      pred,
		HealthScore:     h.services.Predictor.HealthScore(reading.Humidity, reading.Light, reading.Moisture),
		Recommendations: h.services.Predictor.Recommendations(pred.Label),
	}, nil
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List monitored locations
// @Tags         locations
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, locations"
// @Router       /api/v1/locations [get]
func (h *Handler) listLocations(c *gin.Context) {
	locations := h.services.Directory.List()
	c.JSON(http.StatusOK, gin.H{
		"count":     len(locations),
		"locations": locations,
	})
}

// @Summary      Current reading with prediction
// @Description  Builds the synthetic reading for a site, classifies it and attaches the health score and recommendations. 'at' defaults to now.
// @Tags         readings
// @Produce      json
// @Param        id  path   string  true   "Location id"
// @Param        at  query  string  false  "Instant (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"
// @Success      200  {object}  map[string]interface{}  "reading, prediction, health_score, recommendations"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/locations/{id}/reading [get]
func (h *Handler) currentReading(c *gin.Context) {
	at, ok := h.parseTimeQuery(c, "at")
	if !ok {
		return
	}
	snap, err := h.buildSnapshot(c.Param("id"), at)
	if err != nil {
		h.logAndJSONError(c, errGetReading, "reading_failed", err, "location", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, snap)
}
