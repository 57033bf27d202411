package api

import (
	"strconv"

	"gridgame/internal/engine"
	"gridgame/internal/model"
	"gridgame/internal/query"
	apperr "gridgame/pkg/errors"
	"gridgame/pkg/response"

	"github.com/gin-gonic/gin"
)

// CreateSession handles POST /sessions.
func (h *Handler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.ErrMalformedBody.WithDetail(err.Error()))
		return
	}

	sess, err := h.engine.CreateSession(c.Request.Context(), engine.CreateSessionInput{
		HostID:   req.HostID,
		HostName: req.HostName,
		HostIcon: req.HostIcon,
		GameIcon: req.GameIcon,
		GameType: model.GameType(req.GameType),
	})
	if err != nil {
		handleEngineError(c, err)
		return
	}

	dto, err := toSessionDTO(sess, nil)
	if err != nil {
		handleEngineError(c, apperr.ErrInvariantViolation.WithDetail(err.Error()))
		return
	}
	response.Created(c, dto)
}

// GetSession handles GET /sessions/{id}.
func (h *Handler) GetSession(c *gin.Context) {
	id := c.Param("id")
	detail, err := h.query.GetSession(c.Request.Context(), id)
	if err != nil {
		handleEngineError(c, err)
		return
	}

	dto, err := toSessionDTO(detail.Session, detail.Moves)
	if err != nil {
		handleEngineError(c, apperr.ErrInvariantViolation.WithDetail(err.Error()))
		return
	}
	response.OK(c, dto)
}

// ListSessions handles GET /sessions?status=&hostId=&limit=&cursor=.
func (h *Handler) ListSessions(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.Error(c, apperr.ErrInvalidPaging.WithDetail("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	result, err := h.query.ListSessions(c.Request.Context(), query.ListSessionsInput{
		Status: model.Status(c.Query("status")),
		HostID: c.Query("hostId"),
		Limit:  limit,
		Cursor: c.Query("cursor"),
	})
	if err != nil {
		handleEngineError(c, err)
		return
	}
	response.OK(c, toListSessionsResponse(result))
}

// JoinSession handles POST /sessions/{id}/join.
func (h *Handler) JoinSession(c *gin.Context) {
	id := c.Param("id")
	var req joinSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.ErrMalformedBody.WithDetail(err.Error()))
		return
	}

	ctx, cancel := h.lockCtx(c)
	defer cancel()
	sess, err := h.engine.JoinSession(ctx, id, req.PlayerID)
	if err != nil {
		handleEngineError(c, err)
		return
	}

	// An idempotent re-join of an ACTIVE session may already have
	// moves; project the committed state rather than the bare row.
	detail, err := h.query.GetSession(c.Request.Context(), sess.ID)
	if err != nil {
		handleEngineError(c, err)
		return
	}

	dto, err := toSessionDTO(detail.Session, detail.Moves)
	if err != nil {
		handleEngineError(c, apperr.ErrInvariantViolation.WithDetail(err.Error()))
		return
	}
	response.OK(c, dto)
}

// SubmitMove handles POST /sessions/{id}/move.
func (h *Handler) SubmitMove(c *gin.Context) {
	id := c.Param("id")
	var req submitMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.ErrMalformedBody.WithDetail(err.Error()))
		return
	}

	ctx, cancel := h.lockCtx(c)
	defer cancel()
	sess, err := h.engine.SubmitMove(ctx, id, req.PlayerID, req.Row, req.Col)
	if err != nil {
		handleEngineError(c, err)
		return
	}

	detail, err := h.query.GetSession(c.Request.Context(), sess.ID)
	if err != nil {
		handleEngineError(c, err)
		return
	}

	dto, err := toSessionDTO(detail.Session, detail.Moves)
	if err != nil {
		handleEngineError(c, apperr.ErrInvariantViolation.WithDetail(err.Error()))
		return
	}
	response.OK(c, dto)
}
