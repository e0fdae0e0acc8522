package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/orrerylabs/orrery/internal/gallery"
)

// projectNotFound is the message browsers show; kept stable for clients.
const projectNotFound = "Project not found"

// ProjectCreateRequest is the body of POST /api/v1/projects.
type ProjectCreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
	ImageURL    string   `json:"image_url"`
	DemoURL     string   `json:"demo_url"`
	GithubURL   string   `json:"github_url"`
	Category    string   `json:"category"`
	Featured    bool     `json:"featured"`
}

func (s *Server) handleListProjects(c echo.Context) error {
	projects, err := s.store.ListProjects(c.Request().Context())
	if err != nil {
		s.logger.Error("listing projects", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list projects")
	}
	if projects == nil {
		projects = []gallery.Project{}
	}
	return c.JSON(http.StatusOK, projects)
}

func (s *Server) handleGetProject(c echo.Context) error {
	p, err := s.store.GetProject(c.Request().Context(), c.Param("id"))
	if errors.Is(err, gallery.ErrProjectNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, projectNotFound)
	}
	if err != nil {
		s.logger.Error("getting project", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to get project")
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) handleCreateProject(c echo.Context) error {
	var req ProjectCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	p, err := gallery.NewProject(req.Title)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.Description = req.Description
	p.TechStack = req.TechStack
	p.ImageURL = req.ImageURL
	p.DemoURL = req.DemoURL
	p.GithubURL = req.GithubURL
	p.Category = req.Category
	p.Featured = req.Featured

	ctx := c.Request().Context()
	if err := s.store.CreateProject(ctx, *p); err != nil {
		s.logger.Error("creating project", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create project")
	}

	// The project set changed, so the scene needs fresh placements.
	if err := s.LoadFromStore(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to refresh scene")
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) handleDeleteProject(c echo.Context) error {
	ctx := c.Request().Context()
	err := s.store.DeleteProject(ctx, c.Param("id"))
	if errors.Is(err, gallery.ErrProjectNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, projectNotFound)
	}
	if err != nil {
		s.logger.Error("deleting project", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete project")
	}

	if err := s.LoadFromStore(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to refresh scene")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

// SampleResponse is the body of POST /api/v1/projects/sample.
type SampleResponse struct {
	Message  string            `json:"message"`
	Projects []gallery.Project `json:"projects"`
}

func (s *Server) handleSampleProjects(c echo.Context) error {
	ctx := c.Request().Context()
	samples := gallery.SampleProjects()

	if err := s.store.ReplaceAllProjects(ctx, samples); err != nil {
		s.logger.Error("seeding sample projects", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to seed sample projects")
	}
	if err := s.LoadFromStore(ctx); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to refresh scene")
	}
	return c.JSON(http.StatusOK, SampleResponse{
		Message:  fmt.Sprintf("Created %d sample projects", len(samples)),
		Projects: samples,
	})
}

// StatusCheckRequest is the body of POST /api/v1/status.
type StatusCheckRequest struct {
	ClientName string `json:"client_name"`
}

func (s *Server) handleCreateStatus(c echo.Context) error {
	var req StatusCheckRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ClientName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "client_name is required")
	}

	sc := gallery.NewStatusCheck(req.ClientName)
	if err := s.store.CreateStatusCheck(c.Request().Context(), sc); err != nil {
		s.logger.Error("creating status check", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create status check")
	}
	return c.JSON(http.StatusOK, sc)
}

func (s *Server) handleListStatus(c echo.Context) error {
	checks, err := s.store.ListStatusChecks(c.Request().Context(), 1000)
	if err != nil {
		s.logger.Error("listing status checks", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list status checks")
	}
	if checks == nil {
		checks = []gallery.StatusCheck{}
	}
	return c.JSON(http.StatusOK, checks)
}
