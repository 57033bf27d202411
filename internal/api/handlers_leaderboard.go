package api

import (
	"strconv"

	"gridgame/internal/query"
	apperr "gridgame/pkg/errors"
	"gridgame/pkg/response"

	"github.com/gin-gonic/gin"
)

// Leaderboard handles GET /leaderboard?metric=&limit=.
func (h *Handler) Leaderboard(c *gin.Context) {
	metric := query.Metric(c.DefaultQuery("metric", string(query.MetricWinCount)))

	limit := query.MaxLeaderboardLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.Error(c, apperr.ErrInvalidPaging.WithDetail("limit must be a positive integer"))
			return
		}
		limit = n
	}

	entries, err := h.query.Leaderboard(c.Request.Context(), metric, limit)
	if err != nil {
		handleEngineError(c, err)
		return
	}
	response.OK(c, toLeaderboardDTO(entries))
}
