package scene

import (
	"errors"

	"github.com/orrerylabs/orrery/internal/gallery"
)

// LoadFailedMessage is the human-visible message surfaced for any data
// fetch failure. Fetch errors are never silently swallowed: they all end
// up here, next to a retry affordance.
const LoadFailedMessage = "Failed to load projects. Please try again."

// ErrNotReady is returned by operations that require a loaded project
// list while the lifecycle is still Loading or in Error.
var ErrNotReady = errors.New("scene is not ready")

// Phase enumerates the load lifecycle states.
type Phase int

const (
	// PhaseLoading is the initial state, re-entered on retry or reload.
	PhaseLoading Phase = iota
	// PhaseReady means a project list has arrived and the composer may run.
	PhaseReady
	// PhaseError means the last fetch failed; retry re-enters Loading.
	PhaseError
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Lifecycle gates the composer behind data arrival: Loading → Ready on a
// successful fetch, Loading → Error on failure, and back to Loading via
// retry or an explicit reload. Only the lifecycle replaces the project
// list; render passes read it without copying.
type Lifecycle struct {
	phase    Phase
	projects []gallery.Project
	errMsg   string
}

// NewLifecycle starts in Loading.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{phase: PhaseLoading}
}

// Phase returns the current phase.
func (l *Lifecycle) Phase() Phase {
	return l.phase
}

// Loaded transitions to Ready with the newly arrived project list.
func (l *Lifecycle) Loaded(projects []gallery.Project) {
	l.phase = PhaseReady
	l.projects = projects
	l.errMsg = ""
}

// Failed transitions to Error. An empty message falls back to the
// canonical load-failure text so the failure stays human-visible.
func (l *Lifecycle) Failed(message string) {
	if message == "" {
		message = LoadFailedMessage
	}
	l.phase = PhaseError
	l.projects = nil
	l.errMsg = message
}

// Retry re-enters Loading, discarding any previous error. It is also the
// reload transition from Ready.
func (l *Lifecycle) Retry() {
	l.phase = PhaseLoading
	l.projects = nil
	l.errMsg = ""
}

// Projects returns the loaded list, or ErrNotReady outside of Ready.
func (l *Lifecycle) Projects() ([]gallery.Project, error) {
	if l.phase != PhaseReady {
		return nil, ErrNotReady
	}
	return l.projects, nil
}

// ErrorMessage returns the failure text while in Error, or "".
func (l *Lifecycle) ErrorMessage() string {
	return l.errMsg
}
