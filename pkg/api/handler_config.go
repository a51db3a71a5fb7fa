package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenroomlab/greenroom/pkg/models"
)

// configView is the public shape of a study config. The graph is
// returned as compiled.
type configView struct {
	ConfigID    string       `json:"configId"`
	Owner       string       `json:"owner,omitempty"`
	RequireAuth bool         `json:"requireAuth"`
	Graph       models.Graph `json:"graph"`
}

// createConfigRequest is the body of POST /configs.
type createConfigRequest struct {
	ConfigID    string       `json:"configId"`
	Owner       string       `json:"owner,omitempty"`
	RequireAuth bool         `json:"requireAuth,omitempty"`
	Graph       models.Graph `json:"graph"`
}

// getConfigHandler handles GET /configs/:id.
func (s *Server) getConfigHandler(c echo.Context) error {
	cfg, err := s.configs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, configView{
		ConfigID:    cfg.ID,
		Owner:       cfg.Owner,
		RequireAuth: cfg.RequireAuth,
		Graph:       cfg.Graph,
	})
}

// createConfigHandler handles POST /configs. Researcher-side upload of a
// compiled graph.
func (s *Server) createConfigHandler(c echo.Context) error {
	var req createConfigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	owner := req.Owner
	if owner == "" {
		owner = extractUserID(c)
	}

	cfg, err := s.configs.Create(c.Request().Context(), req.ConfigID, owner, req.RequireAuth, req.Graph)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, configView{
		ConfigID:    cfg.ID,
		Owner:       cfg.Owner,
		RequireAuth: cfg.RequireAuth,
		Graph:       cfg.Graph,
	})
}
