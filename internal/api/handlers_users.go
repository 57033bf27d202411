package api

import (
	apperr "gridgame/pkg/errors"
	"gridgame/pkg/response"

	"github.com/gin-gonic/gin"
)

// CreateUser handles POST /users.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.ErrMalformedBody.WithDetail(err.Error()))
		return
	}

	user, err := h.engine.CreateUser(c.Request.Context(), req.Name, req.Icon)
	if err != nil {
		handleEngineError(c, err)
		return
	}

	response.Created(c, userDTO{
		ID:        user.ID,
		Name:      user.Name,
		Icon:      user.Icon,
		CreatedAt: user.CreatedAt,
	})
}
