// Package viewer renders the composed scene in the terminal.
//
// The viewer is a full rendering boundary for the scene engine: it runs
// its own Composer, feeds it projects fetched from the daemon, projects
// the 3D scene onto a character grid, and forwards key-driven pick and
// close events back into the selection state machine.
package viewer

import (
	"context"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/orrerylabs/orrery/internal/gallery"
	"github.com/orrerylabs/orrery/internal/scene"
)

const (
	frameInterval = 100 * time.Millisecond
	historySize   = 30

	minZoom = 0.4
	maxZoom = 3.0
	// maxPitch stops the camera short of the poles.
	maxPitch = 1.4
)

// Message types.
type projectsMsg []gallery.Project
type fetchErrMsg struct{ err error }
type frameMsg time.Time

// Model is the bubbletea model for the scene viewer.
type Model struct {
	client   *Client
	composer *scene.Composer
	logger   *zap.Logger
	spinner  spinner.Model

	// Orbit camera state. Zoom scales the configured camera distance.
	yaw   float64
	pitch float64
	zoom  float64

	width  int
	height int

	// focus is the index of the keyboard-focused object.
	focus int

	// composeTimes holds recent Scene() latencies in microseconds.
	composeTimes []float64

	quitting bool
}

// NewModel creates a viewer for the given daemon URL.
func NewModel(client *Client, sceneCfg *scene.Config, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		client:       client,
		composer:     scene.NewComposer(sceneCfg, logger),
		logger:       logger,
		spinner:      sp,
		pitch:        0.35,
		zoom:         1.0,
		composeTimes: make([]float64, 0, historySize),
	}
}

// Init kicks off the spinner, the first fetch, and the frame ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		fetchProjects(m.client),
		frameTick(),
	)
}

func fetchProjects(client *Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		projects, err := client.FetchProjects(ctx)
		if err != nil {
			return fetchErrMsg{err: err}
		}
		return projectsMsg(projects)
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case projectsMsg:
		m.composer.SetProjects(msg)
		m.focus = 0
		return m, nil

	case fetchErrMsg:
		m.logger.Warn("project fetch failed", zap.Error(msg.err))
		m.composer.Fail(scene.LoadFailedMessage)
		return m, nil

	case frameMsg:
		if m.quitting {
			return m, nil
		}
		m.recordComposeTime()
		return m, frameTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return *m, tea.Quit

	case "r":
		if m.composer.Phase() == scene.PhaseError {
			m.composer.Reload()
			return *m, tea.Batch(m.spinner.Tick, fetchProjects(m.client))
		}

	case "left":
		m.yaw -= 0.15
	case "right":
		m.yaw += 0.15
	case "up":
		m.pitch = math.Min(m.pitch+0.1, maxPitch)
	case "down":
		m.pitch = math.Max(m.pitch-0.1, -maxPitch)
	case "+", "=":
		m.zoom = math.Max(m.zoom*0.9, minZoom)
	case "-", "_":
		m.zoom = math.Min(m.zoom*1.1, maxZoom)

	case "tab":
		m.moveFocus(1)
	case "shift+tab":
		m.moveFocus(-1)

	case "enter", " ":
		if id, ok := m.focusedID(); ok {
			if err := m.composer.Pick(id); err != nil {
				m.logger.Warn("pick rejected", zap.String("project_id", id), zap.Error(err))
			}
		}

	case "esc":
		m.composer.Close()
	}
	return *m, nil
}

func (m *Model) moveFocus(delta int) {
	desc, err := m.composer.Scene()
	if err != nil || len(desc.Objects) == 0 {
		return
	}
	n := len(desc.Objects)
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m *Model) focusedID() (string, bool) {
	desc, err := m.composer.Scene()
	if err != nil || len(desc.Objects) == 0 {
		return "", false
	}
	if m.focus < 0 || m.focus >= len(desc.Objects) {
		return "", false
	}
	return desc.Objects[m.focus].ProjectID, true
}

func (m *Model) recordComposeTime() {
	if m.composer.Phase() != scene.PhaseReady {
		return
	}
	start := time.Now()
	if _, err := m.composer.Scene(); err != nil {
		return
	}
	us := float64(time.Since(start).Microseconds())
	m.composeTimes = append(m.composeTimes, us)
	if len(m.composeTimes) > historySize {
		m.composeTimes = m.composeTimes[1:]
	}
}
