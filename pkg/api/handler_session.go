package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenroomlab/greenroom/pkg/models"
)

// startSessionHandler handles POST /sessions/start.
func (s *Server) startSessionHandler(c echo.Context) error {
	var req models.StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ConfigID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "configId is required")
	}

	resp, err := s.sessions.Start(c.Request().Context(), req, extractUserID(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// getSessionHandler handles GET /sessions/:id.
func (s *Server) getSessionHandler(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	snap, err := s.sessions.Get(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

// advanceHandler handles POST /sessions/:id/advance.
func (s *Server) advanceHandler(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req models.AdvanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	snap, err := s.sessions.Advance(c.Request().Context(), sessionID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

// updateStateHandler handles POST /sessions/:id/state.
func (s *Server) updateStateHandler(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req models.UpdateStateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := s.sessions.UpdateState(c.Request().Context(), sessionID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// submitEventHandler handles POST /sessions/:id/events.
func (s *Server) submitEventHandler(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req models.SubmitEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := s.sessions.SubmitEvent(c.Request().Context(), sessionID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// matchmakeHandler handles POST /sessions/:id/matchmake. A waiting
// reservation answers 202; the caller that fills the pool gets the
// matched group synchronously with 200.
func (s *Server) matchmakeHandler(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req models.MatchmakeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// The session must exist; its config scopes the pool.
	snap, err := s.sessions.Get(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}

	resp, err := s.scheduler.Enqueue(c.Request().Context(), sessionID, snap.ConfigID, req)
	if err != nil {
		return mapServiceError(err)
	}
	if resp.Status == models.MatchStatusWaiting {
		return c.JSON(http.StatusAccepted, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// cancelMatchmakeHandler handles POST /sessions/:id/matchmake/cancel.
func (s *Server) cancelMatchmakeHandler(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	status := s.scheduler.RemoveSession(sessionID)
	return c.JSON(http.StatusOK, models.CancelMatchmakeResponse{Status: status})
}

// randomizeHandler handles POST /sessions/:id/randomize.
func (s *Server) randomizeHandler(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req models.RandomizeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp, err := s.sessions.Randomize(c.Request().Context(), sessionID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}
