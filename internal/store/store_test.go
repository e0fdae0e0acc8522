package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orrerylabs/orrery/internal/gallery"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
	_, err = Open("   ")
	assert.Error(t, err)
}

func TestProjectCRUD(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := gallery.NewProject("3D Portfolio Website")
	require.NoError(t, err)
	p.Description = "An interactive 3D portfolio."
	p.TechStack = []string{"React", "Three.js"}
	p.Category = "Portfolio"
	p.Featured = true

	require.NoError(t, s.CreateProject(ctx, *p))

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Title, got.Title)
	assert.Equal(t, p.TechStack, got.TechStack)
	assert.True(t, got.Featured)
	assert.WithinDuration(t, p.CreatedDate, got.CreatedDate, time.Second)

	list, err := s.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.DeleteProject(ctx, p.ID))
	_, err = s.GetProject(ctx, p.ID)
	assert.ErrorIs(t, err, gallery.ErrProjectNotFound)
}

func TestGetProjectNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetProject(context.Background(), "missing")
	assert.ErrorIs(t, err, gallery.ErrProjectNotFound)
}

func TestDeleteProjectNotFound(t *testing.T) {
	s := openTestStore(t)
	err := s.DeleteProject(context.Background(), "missing")
	assert.ErrorIs(t, err, gallery.ErrProjectNotFound)
}

func TestCreateProjectRejectsInvalid(t *testing.T) {
	s := openTestStore(t)
	err := s.CreateProject(context.Background(), gallery.Project{Title: "no id"})
	assert.ErrorIs(t, err, gallery.ErrEmptyProjectID)
}

func TestReplaceAllProjects(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := gallery.NewProject("Old Entry")
	require.NoError(t, err)
	require.NoError(t, s.CreateProject(ctx, *first))

	samples := gallery.SampleProjects()
	require.NoError(t, s.ReplaceAllProjects(ctx, samples))

	list, err := s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(samples))

	// The pre-existing record is gone.
	_, err = s.GetProject(ctx, first.ID)
	assert.ErrorIs(t, err, gallery.ErrProjectNotFound)

	n, err := s.CountProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(samples), n)
}

func TestReplaceAllProjectsRollsBackOnInvalid(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceAllProjects(ctx, gallery.SampleProjects()))

	bad := []gallery.Project{{Title: "missing id"}}
	require.Error(t, s.ReplaceAllProjects(ctx, bad))

	// The failed replace must not have cleared the table.
	n, err := s.CountProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestStatusChecks(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"probe-a", "probe-b"} {
		require.NoError(t, s.CreateStatusCheck(ctx, gallery.NewStatusCheck(name)))
	}

	checks, err := s.ListStatusChecks(ctx, 0)
	require.NoError(t, err)
	require.Len(t, checks, 2)

	checks, err = s.ListStatusChecks(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, checks, 1)
}
