package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orrerylabs/orrery/internal/gallery"
	"github.com/orrerylabs/orrery/internal/scene"
	"github.com/orrerylabs/orrery/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	composer := scene.NewComposer(scene.NewDefaultConfig(), zap.NewNop())
	srv, err := NewServer(st, composer, zap.NewNop(), nil)
	require.NoError(t, err)
	return srv
}

func seededServer(t *testing.T) *Server {
	t.Helper()
	srv := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, srv.store.ReplaceAllProjects(ctx, gallery.SampleProjects()))
	require.NoError(t, srv.LoadFromStore(ctx))
	return srv
}

func do(srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func TestNewServerValidation(t *testing.T) {
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	defer st.Close()
	composer := scene.NewComposer(nil, nil)

	_, err = NewServer(nil, composer, zap.NewNop(), nil)
	assert.Error(t, err)
	_, err = NewServer(st, nil, zap.NewNop(), nil)
	assert.Error(t, err)
	_, err = NewServer(st, composer, nil, nil)
	assert.Error(t, err)

	srv, err := NewServer(st, composer, zap.NewNop(), nil)
	require.NoError(t, err)
	assert.Equal(t, 8123, srv.config.Port)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := do(srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestProjectEndpoints(t *testing.T) {
	srv := seededServer(t)

	rec := do(srv, http.MethodGet, "/api/v1/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var projects []gallery.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Len(t, projects, 6)

	rec = do(srv, http.MethodGet, "/api/v1/projects/"+projects[0].ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(srv, http.MethodGet, "/api/v1/projects/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Project not found")

	rec = do(srv, http.MethodPost, "/api/v1/projects", ProjectCreateRequest{
		Title:     "Weather Station",
		TechStack: []string{"Go", "MQTT"},
		Category:  "IoT",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var created gallery.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	// The scene follows the store: seven objects now.
	desc := fetchScene(t, srv)
	assert.Len(t, desc.Objects, 7)

	rec = do(srv, http.MethodPost, "/api/v1/projects", ProjectCreateRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(srv, http.MethodDelete, "/api/v1/projects/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Project deleted successfully")

	rec = do(srv, http.MethodDelete, "/api/v1/projects/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSampleEndpoint(t *testing.T) {
	srv := newTestServer(t)
	require.NoError(t, srv.LoadFromStore(context.Background()))

	rec := do(srv, http.MethodPost, "/api/v1/projects/sample", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SampleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Created 6 sample projects", resp.Message)
	assert.Len(t, resp.Projects, 6)

	desc := fetchScene(t, srv)
	assert.Len(t, desc.Objects, 6)
}

func TestStatusEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := do(srv, http.MethodPost, "/api/v1/status", StatusCheckRequest{ClientName: "probe"})
	require.Equal(t, http.StatusOK, rec.Code)
	var sc gallery.StatusCheck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sc))
	assert.Equal(t, "probe", sc.ClientName)
	assert.NotEmpty(t, sc.ID)

	rec = do(srv, http.MethodPost, "/api/v1/status", StatusCheckRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(srv, http.MethodGet, "/api/v1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var checks []gallery.StatusCheck
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checks))
	assert.Len(t, checks, 1)
}

func fetchScene(t *testing.T, srv *Server) scene.SceneDescription {
	t.Helper()
	rec := do(srv, http.MethodGet, "/api/v1/scene", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var desc scene.SceneDescription
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &desc))
	return desc
}

func TestSceneUnavailableBeforeLoad(t *testing.T) {
	srv := newTestServer(t)

	rec := do(srv, http.MethodGet, "/api/v1/scene", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp SceneUnavailableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "loading", resp.Phase)
}

func TestSceneAndSelectionFlow(t *testing.T) {
	srv := seededServer(t)

	desc := fetchScene(t, srv)
	require.Len(t, desc.Objects, 6)
	assert.Len(t, desc.Particles, scene.DefaultParticleCount)
	assert.Equal(t, 15.0, desc.Camera.Distance)

	// Nothing selected yet.
	rec := do(srv, http.MethodGet, "/api/v1/scene/selected", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	target := desc.Objects[2]
	rec = do(srv, http.MethodPost, "/api/v1/scene/pick", PickRequest{ProjectID: target.ProjectID})
	require.Equal(t, http.StatusOK, rec.Code)

	var picked scene.SceneDescription
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &picked))
	assert.Equal(t, 1.5, picked.Objects[2].Emphasis.Scale)
	assert.NotEmpty(t, picked.Objects[2].Label)

	rec = do(srv, http.MethodGet, "/api/v1/scene/selected", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var selected gallery.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &selected))
	assert.Equal(t, target.ProjectID, selected.ID)

	// Unknown pick leaves selection alone.
	rec = do(srv, http.MethodPost, "/api/v1/scene/pick", PickRequest{ProjectID: "ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(srv, http.MethodPost, "/api/v1/scene/pick", PickRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(srv, http.MethodPost, "/api/v1/scene/close", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(srv, http.MethodGet, "/api/v1/scene/selected", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSceneReload(t *testing.T) {
	srv := seededServer(t)

	rec := do(srv, http.MethodPost, "/api/v1/scene/reload", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ready")

	desc := fetchScene(t, srv)
	assert.Len(t, desc.Objects, 6)
}
