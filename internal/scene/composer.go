package scene

import (
	"errors"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"github.com/orrerylabs/orrery/internal/gallery"
)

// ErrUnknownProject is returned for pick events naming a project that is
// not part of the current scene.
var ErrUnknownProject = errors.New("unknown project")

// Config holds the tunable scene parameters.
type Config struct {
	// Radius of the project ring.
	Radius float64 `koanf:"radius"`
	// JitterSpread is the half-range of per-object vertical offsets.
	JitterSpread float64 `koanf:"jitter_spread"`
	// ParticleCount is the size of the background field.
	ParticleCount int `koanf:"particle_count"`
	// ParticleExtent is the edge length of the particle cube.
	ParticleExtent float64 `koanf:"particle_extent"`
	// CameraDistance is the fixed initial camera distance.
	CameraDistance float64 `koanf:"camera_distance"`
}

// NewDefaultConfig returns the scene defaults: a ring of radius 8 inside
// a 25-unit particle cube, viewed from distance 15.
func NewDefaultConfig() *Config {
	return &Config{
		Radius:         8,
		JitterSpread:   DefaultJitterSpread,
		ParticleCount:  DefaultParticleCount,
		ParticleExtent: DefaultParticleExtent,
		CameraDistance: 15,
	}
}

// CameraConfig is the orbit-control setup handed to the renderer.
type CameraConfig struct {
	Distance     float64 `json:"distance"`
	EnablePan    bool    `json:"enable_pan"`
	EnableZoom   bool    `json:"enable_zoom"`
	EnableRotate bool    `json:"enable_rotate"`
}

// SceneObject is the declarative render payload for one project.
type SceneObject struct {
	ProjectID string    `json:"project_id"`
	Shape     ShapeKind `json:"shape"`
	Color     string    `json:"color"`
	Position  Placement `json:"position"`
	Emphasis  Emphasis  `json:"emphasis"`
	// Label carries the title while the object is selected, anchored
	// below the object by the renderer. Empty otherwise.
	Label string `json:"label,omitempty"`
}

// SceneDescription is the full per-frame payload for the rendering
// boundary.
type SceneDescription struct {
	Objects   []SceneObject `json:"objects"`
	Particles []Point3      `json:"particles"`
	Camera    CameraConfig  `json:"camera"`
}

// Composer combines the project list, layout, identity hash, selection
// state, and particle field into renderable scene descriptions.
//
// A composer is one scene session. It owns the selection state and the
// load lifecycle; it borrows project records and never mutates them.
// All methods are safe for concurrent use: picks and recompositions are
// serialized, so no partial-selection state is ever observable.
type Composer struct {
	mu        sync.Mutex
	logger    *zap.Logger
	cfg       *Config
	lifecycle *Lifecycle
	selection Selection

	projects   []gallery.Project
	placements []Placement
	attrs      map[string]VisualAttributes
	field      []Point3
}

// NewComposer creates a composer in the Loading phase. The particle
// field is sampled once here and reused for the composer's lifetime.
func NewComposer(cfg *Config, logger *zap.Logger) *Composer {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Composer{
		logger:    logger,
		cfg:       cfg,
		lifecycle: NewLifecycle(),
		attrs:     make(map[string]VisualAttributes),
		field:     GenerateField(cfg.ParticleCount, cfg.ParticleExtent, rand.New(rand.NewSource(rand.Int63()))),
	}
}

// Phase reports the lifecycle phase.
func (c *Composer) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lifecycle.Phase()
}

// ErrorMessage reports the lifecycle failure text, if any.
func (c *Composer) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lifecycle.ErrorMessage()
}

// SetProjects delivers a successful data fetch: the lifecycle moves to
// Ready and placements are recomputed for the new list. Selection is
// cleared if the selected project no longer exists.
func (c *Composer) SetProjects(projects []gallery.Project) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lifecycle.Loaded(projects)
	c.projects = projects
	c.relayout()

	if id, ok := c.selection.SelectedID(); ok {
		if _, err := c.findLocked(id); err != nil {
			c.selection.Close()
		}
	}

	c.logger.Info("scene projects updated",
		zap.Int("count", len(projects)),
		zap.Float64("radius", c.cfg.Radius),
	)
}

// Fail delivers a fetch failure. The message reaches the renderer via
// ErrorMessage and the scene endpoint.
func (c *Composer) Fail(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lifecycle.Failed(message)
	c.projects = nil
	c.placements = nil
	c.selection.Close()
	c.logger.Warn("scene load failed", zap.String("message", c.lifecycle.ErrorMessage()))
}

// Reload re-enters Loading. The caller is expected to follow up with
// SetProjects or Fail once the new fetch settles; superseding an
// in-flight fetch is the data collaborator's problem, not ours.
func (c *Composer) Reload() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lifecycle.Retry()
	c.projects = nil
	c.placements = nil
	c.selection.Close()
}

// relayout recomputes ring placements with per-ID stable jitter.
// Caller holds c.mu.
func (c *Composer) relayout() {
	ids := make([]string, len(c.projects))
	for i, p := range c.projects {
		ids[i] = p.ID
	}
	c.placements = ComputeLayout(len(c.projects), c.cfg.Radius, StableJitter(ids, c.cfg.JitterSpread))
}

// findLocked returns the index of the project with the given ID.
// Caller holds c.mu.
func (c *Composer) findLocked(id string) (int, error) {
	for i, p := range c.projects {
		if p.ID == id {
			return i, nil
		}
	}
	return 0, ErrUnknownProject
}

// Pick handles a pointer pick from the rendering boundary. Picking the
// selected project again closes it; picking another retargets directly.
func (c *Composer) Pick(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.lifecycle.Projects(); err != nil {
		return err
	}
	if _, err := c.findLocked(id); err != nil {
		return err
	}
	c.selection.Pick(id)
	return nil
}

// Close clears the selection. Idempotent.
func (c *Composer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.Close()
}

// Hover reports whether the given ID names a live object, letting the
// boundary toggle its cursor affordance. Hovering has no state effect.
func (c *Composer) Hover(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.findLocked(id)
	return err == nil
}

// Selected returns the full record of the selected project for the
// detail-panel collaborator.
func (c *Composer) Selected() (gallery.Project, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, ok := c.selection.SelectedID()
	if !ok {
		return gallery.Project{}, false
	}
	i, err := c.findLocked(id)
	if err != nil {
		return gallery.Project{}, false
	}
	return c.projects[i], true
}

// Scene composes the current render payload. Placements are reused from
// the last project change; only emphasis values vary with selection.
// Returns ErrNotReady outside of the Ready phase.
func (c *Composer) Scene() (*SceneDescription, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	projects, err := c.lifecycle.Projects()
	if err != nil {
		return nil, err
	}

	objects := make([]SceneObject, len(projects))
	for i, p := range projects {
		attrs, ok := c.attrs[p.Title]
		if !ok {
			attrs = DeriveVisualAttributes(p.Title)
			c.attrs[p.Title] = attrs
		}

		obj := SceneObject{
			ProjectID: p.ID,
			Shape:     attrs.ShapeKind,
			Color:     attrs.Color,
			Position:  c.placements[i],
			Emphasis:  c.selection.EmphasisFor(p.ID),
		}
		if obj.Emphasis.LabelVisible {
			obj.Label = p.Title
		}
		objects[i] = obj
	}

	return &SceneDescription{
		Objects:   objects,
		Particles: c.field,
		Camera: CameraConfig{
			Distance:     c.cfg.CameraDistance,
			EnablePan:    true,
			EnableZoom:   true,
			EnableRotate: true,
		},
	}, nil
}
