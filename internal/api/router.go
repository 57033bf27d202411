// Package api is the Request Facade: HTTP framing over the
// Session Engine and Query Surface. It parses and validates inputs,
// dispatches to the engine/query layer (which mints ids and UTC
// timestamps for new users and sessions), and maps engine error kinds
// to HTTP status + body.
package api

import (
	"context"
	"net/http"
	"time"

	"gridgame/internal/config"
	"gridgame/internal/engine"
	"gridgame/internal/middleware"
	"gridgame/internal/query"
	"gridgame/pkg/response"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handler holds the two collaborators the facade dispatches to.
// lockTimeout bounds how long a join/move request waits on the
// session lock before the attempt is cancelled; the store itself
// blocks indefinitely, so the facade is the layer that imposes one.
type Handler struct {
	engine      *engine.Engine
	query       *query.Service
	lockTimeout time.Duration
}

// RegisterRoutes wires the service routes onto r.
func RegisterRoutes(r *gin.Engine, eng *engine.Engine, q *query.Service, corsCfg config.CORSConfig, gameCfg config.GameConfig) {
	r.Use(middleware.RequestLogger())

	if len(corsCfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     corsCfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
		}))
	}

	h := &Handler{engine: eng, query: q, lockTimeout: gameCfg.LockTimeout}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.POST("/users", h.CreateUser)

	r.POST("/sessions", h.CreateSession)
	r.GET("/sessions", h.ListSessions)
	r.GET("/sessions/:id", h.GetSession)
	r.POST("/sessions/:id/join", h.JoinSession)
	r.POST("/sessions/:id/move", h.SubmitMove)

	r.GET("/leaderboard", h.Leaderboard)
}

// handleEngineError maps a pkg/errors.Kind to an HTTP status and
// writes the body.
func handleEngineError(c *gin.Context, err error) {
	response.Error(c, err)
}

// lockCtx derives the context a join/move handler passes to the
// engine, bounded by the configured lock timeout (lock
// acquisition is blocking; any upstream timeout cancels the attempt
// cleanly).
func (h *Handler) lockCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.lockTimeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.lockTimeout)
}
