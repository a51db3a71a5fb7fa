package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenroomlab/greenroom/pkg/models"
)

// maxMessageLength caps participant message size.
const maxMessageLength = 10000

// sendMessageHandler handles POST /chat/:groupId/send.
func (s *Server) sendMessageHandler(c echo.Context) error {
	groupID := c.Param("groupId")
	if groupID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "group id is required")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Content) > maxMessageLength {
		return echo.NewHTTPError(http.StatusBadRequest, "content exceeds maximum length")
	}

	resp, err := s.chats.Send(c.Request().Context(), groupID, req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// chatHistoryHandler handles GET /chat/:groupId/history?sessionId=...
func (s *Server) chatHistoryHandler(c echo.Context) error {
	groupID := c.Param("groupId")
	if groupID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "group id is required")
	}
	sessionID := c.QueryParam("sessionId")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sessionId query parameter is required")
	}

	messages, err := s.chats.History(c.Request().Context(), groupID, sessionID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.HistoryResponse{Messages: messages})
}

// startAgentsHandler handles POST /chat/:groupId/start-agents.
func (s *Server) startAgentsHandler(c echo.Context) error {
	groupID := c.Param("groupId")
	if groupID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "group id is required")
	}

	var req models.StartAgentsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.chats.StartAgents(c.Request().Context(), groupID, req.SessionID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusOK)
}
