package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// parseQueryTime accepts the formats the dashboard sends, normalizing to
// UTC.
func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}

// parseTimeQuery reads an optional time parameter. A zero time means the
// parameter was absent; ok=false means a 400 was already written.
func (h *Handler) parseTimeQuery(c *gin.Context, name string) (time.Time, bool) {
	qs := c.Query(name)
	if qs == "" {
		return time.Time{}, true
	}
	t, err := parseQueryTime(qs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid '" + name + "' time; use RFC3339 or YYYY-MM-DD"})
		return time.Time{}, false
	}
	return t, true
}

// parseIntQuery reads an optional integer parameter. Range checks stay in
// the service layer so its validation is what callers actually hit;
// ok=false means a 400 was already written for a non-numeric value.
func (h *Handler) parseIntQuery(c *gin.Context, name string, def int) (int, bool) {
	qs := c.Query(name)
	if qs == "" {
		return def, true
	}
	v, err := strconv.Atoi(qs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'" + name + "' must be an integer"})
		return 0, false
	}
	return v, true
}
