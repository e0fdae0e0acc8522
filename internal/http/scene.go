package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orrerylabs/orrery/internal/scene"
)

// SceneUnavailableResponse is returned while the scene is Loading or in
// Error; Message carries the human-visible failure text when present.
type SceneUnavailableResponse struct {
	Phase   string `json:"phase"`
	Message string `json:"message,omitempty"`
}

func (s *Server) sceneUnavailable(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, SceneUnavailableResponse{
		Phase:   s.composer.Phase().String(),
		Message: s.composer.ErrorMessage(),
	})
}

func (s *Server) handleScene(c echo.Context) error {
	desc, err := s.composer.Scene()
	if errors.Is(err, scene.ErrNotReady) {
		return s.sceneUnavailable(c)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compose scene")
	}
	s.metrics.RecordCompose(c.Request().Context(), len(desc.Objects))
	return c.JSON(http.StatusOK, desc)
}

// PickRequest is the body of POST /api/v1/scene/pick.
type PickRequest struct {
	ProjectID string `json:"project_id"`
}

func (s *Server) handlePick(c echo.Context) error {
	var req PickRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ProjectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "project_id is required")
	}

	err := s.composer.Pick(req.ProjectID)
	if errors.Is(err, scene.ErrNotReady) {
		return s.sceneUnavailable(c)
	}
	if errors.Is(err, scene.ErrUnknownProject) {
		return echo.NewHTTPError(http.StatusNotFound, projectNotFound)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to pick project")
	}
	s.metrics.RecordPick(c.Request().Context())

	// Picks recompose synchronously: the caller gets the scene with
	// updated emphasis in the same response.
	desc, err := s.composer.Scene()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compose scene")
	}
	return c.JSON(http.StatusOK, desc)
}

func (s *Server) handleCloseSelection(c echo.Context) error {
	s.composer.Close()
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleSelected(c echo.Context) error {
	p, ok := s.composer.Selected()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) handleReload(c echo.Context) error {
	if err := s.LoadFromStore(c.Request().Context()); err != nil {
		return s.sceneUnavailable(c)
	}
	return c.JSON(http.StatusOK, map[string]string{"phase": s.composer.Phase().String()})
}
