// Package api exposes the participant-facing HTTP surface. Handlers are
// thin: validate input, call a service, map errors. Heavy work lives in
// the services.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/greenroomlab/greenroom/pkg/database"
	"github.com/greenroomlab/greenroom/pkg/events"
	"github.com/greenroomlab/greenroom/pkg/matchmaking"
	"github.com/greenroomlab/greenroom/pkg/services"
)

// Server wires HTTP routes to the service layer.
type Server struct {
	db        *database.Client
	sessions  *services.SessionService
	chats     *services.ChatService
	configs   *services.ConfigService
	scheduler *matchmaking.Scheduler
	bus       *events.Bus

	logger *slog.Logger
}

// NewServer creates a new API server
func NewServer(db *database.Client, sessions *services.SessionService, chats *services.ChatService, configs *services.ConfigService, scheduler *matchmaking.Scheduler, bus *events.Bus) *Server {
	return &Server{
		db:        db,
		sessions:  sessions,
		chats:     chats,
		configs:   configs,
		scheduler: scheduler,
		bus:       bus,
		logger:    slog.Default().With("component", "api"),
	}
}

// Router builds the echo instance with middleware and all routes
// registered. corsOrigins is the allowlist from CORS_ORIGINS; empty
// means same-origin only.
func (s *Server) Router(corsOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(s.logger))
	e.Use(securityHeaders())
	if len(corsOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-User-Id"},
		}))
	}

	e.GET("/healthz", s.healthHandler)

	e.POST("/sessions/start", s.startSessionHandler)
	e.GET("/sessions/:id", s.getSessionHandler)
	e.POST("/sessions/:id/advance", s.advanceHandler)
	e.POST("/sessions/:id/state", s.updateStateHandler)
	e.POST("/sessions/:id/events", s.submitEventHandler)
	e.POST("/sessions/:id/matchmake", s.matchmakeHandler)
	e.POST("/sessions/:id/matchmake/cancel", s.cancelMatchmakeHandler)
	e.POST("/sessions/:id/randomize", s.randomizeHandler)
	e.GET("/sessions/:id/stream", s.streamHandler)

	e.POST("/chat/:groupId/send", s.sendMessageHandler)
	e.GET("/chat/:groupId/history", s.chatHistoryHandler)
	e.POST("/chat/:groupId/start-agents", s.startAgentsHandler)

	e.GET("/configs/:id", s.getConfigHandler)
	e.POST("/configs", s.createConfigHandler)

	return e
}

// healthHandler handles GET /healthz.
func (s *Server) healthHandler(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"database": dbHealth,
	})
}
