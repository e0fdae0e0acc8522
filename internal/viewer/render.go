package viewer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/orrerylabs/orrery/internal/gallery"
	"github.com/orrerylabs/orrery/internal/scene"
)

const (
	sparklineWidth  = 24
	sparklineHeight = 1
	panelWidth      = 42
	nearPlane       = 0.5
	// cellAspect compensates for terminal cells being taller than wide.
	cellAspect = 2.0
)

// Shape glyphs, one per scene.ShapeKind.
var shapeGlyphs = map[scene.ShapeKind]rune{
	scene.ShapeBox:         '■',
	scene.ShapeSphere:      '●',
	scene.ShapeOctahedron:  '◆',
	scene.ShapeTetrahedron: '▲',
	scene.ShapeCylinder:    '▮',
}

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("99")).
			Bold(true).
			Padding(0, 1)

	particleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(1, 2).
			Width(panelWidth)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)
)

// cell is one character of the scene canvas.
type cell struct {
	glyph rune
	style lipgloss.Style
	set   bool
}

// View renders the current lifecycle phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width, height := m.width, m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	switch m.composer.Phase() {
	case scene.PhaseLoading:
		return fmt.Sprintf("\n  %s Loading projects...\n", m.spinner.View())
	case scene.PhaseError:
		return fmt.Sprintf("\n  %s\n\n  %s retry  %s quit\n",
			errorStyle.Render(m.composer.ErrorMessage()),
			footerKeyStyle.Render("[r]"),
			footerKeyStyle.Render("[q]"),
		)
	}
	return m.renderScene(width, height)
}

func (m Model) renderScene(width, height int) string {
	desc, err := m.composer.Scene()
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	selected, hasSelection := m.composer.Selected()

	canvasW := width
	if hasSelection {
		canvasW = width - panelWidth - 1
	}
	canvasH := height - 4
	if canvasW < 20 {
		canvasW = 20
	}
	if canvasH < 8 {
		canvasH = 8
	}

	canvas := m.drawCanvas(desc, canvasW, canvasH)

	header := headerStyle.Render("orrery") +
		dimStyle.Render(fmt.Sprintf("  %d projects", len(desc.Objects)))

	body := canvas
	if hasSelection {
		panel := renderDetailPanel(selected)
		body = lipgloss.JoinHorizontal(lipgloss.Top, canvas, " "+panel)
	}

	return strings.Join([]string{header, body, m.renderFooter()}, "\n")
}

// drawCanvas projects particles and objects onto a rune grid using the
// orbit camera, painting far-to-near.
func (m Model) drawCanvas(desc *scene.SceneDescription, w, h int) string {
	grid := make([][]cell, h)
	for r := range grid {
		grid[r] = make([]cell, w)
	}

	dist := desc.Camera.Distance * m.zoom
	// Focal scale tuned so the default ring roughly fills the canvas.
	focal := float64(h) * 1.3

	plot := func(p scene.Point3) (col, row, depth float64, ok bool) {
		x1 := p.X*math.Cos(m.yaw) - p.Z*math.Sin(m.yaw)
		z1 := p.X*math.Sin(m.yaw) + p.Z*math.Cos(m.yaw)
		y2 := p.Y*math.Cos(m.pitch) - z1*math.Sin(m.pitch)
		z2 := p.Y*math.Sin(m.pitch) + z1*math.Cos(m.pitch)

		depth = z2 + dist
		if depth < nearPlane {
			return 0, 0, 0, false
		}
		col = float64(w)/2 + (x1/depth)*focal*cellAspect/2
		row = float64(h)/2 - (y2/depth)*focal/2
		return col, row, depth, true
	}

	put := func(col, row float64, c cell) {
		ci, ri := int(math.Round(col)), int(math.Round(row))
		if ri < 0 || ri >= h || ci < 0 || ci >= w {
			return
		}
		grid[ri][ci] = c
	}

	// Particles first: pure backdrop, never occluding objects.
	for _, p := range desc.Particles {
		if col, row, _, ok := plot(p); ok {
			put(col, row, cell{glyph: '·', style: particleStyle, set: true})
		}
	}

	// Painter's algorithm for the objects.
	type plotted struct {
		obj   scene.SceneObject
		col   float64
		row   float64
		depth float64
	}
	objs := make([]plotted, 0, len(desc.Objects))
	for _, obj := range desc.Objects {
		pos := scene.Point3{X: obj.Position.X, Y: obj.Position.Y, Z: obj.Position.Z}
		if col, row, depth, ok := plot(pos); ok {
			objs = append(objs, plotted{obj: obj, col: col, row: row, depth: depth})
		}
	}
	sort.Slice(objs, func(i, j int) bool { return objs[i].depth > objs[j].depth })

	for _, po := range objs {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(po.obj.Color))
		if po.obj.Emphasis.Scale > 1 {
			style = style.Bold(true)
		}
		glyph := shapeGlyphs[po.obj.Shape]

		put(po.col, po.row, cell{glyph: glyph, style: style, set: true})
		if po.obj.Emphasis.Scale > 1 {
			// Selected objects render wider, approximating the scale
			// bump, with the label anchored below.
			put(po.col-1, po.row, cell{glyph: glyph, style: style, set: true})
			put(po.col+1, po.row, cell{glyph: glyph, style: style, set: true})
			drawLabel(grid, po.obj.Label, int(math.Round(po.col)), int(math.Round(po.row))+1)
		}
	}

	var b strings.Builder
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c].set {
				b.WriteString(grid[r][c].style.Render(string(grid[r][c].glyph)))
			} else {
				b.WriteByte(' ')
			}
		}
		if r < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func drawLabel(grid [][]cell, label string, centerCol, row int) {
	if label == "" || row < 0 || row >= len(grid) {
		return
	}
	runes := []rune(label)
	start := centerCol - len(runes)/2
	for i, r := range runes {
		c := start + i
		if c < 0 || c >= len(grid[row]) {
			continue
		}
		grid[row][c] = cell{glyph: r, style: labelStyle, set: true}
	}
}

func renderDetailPanel(p gallery.Project) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(p.Category))
	if p.Featured {
		b.WriteString("  " + footerKeyStyle.Render("★ featured"))
	}
	b.WriteString("\n\n")
	b.WriteString(p.Description)
	if len(p.TechStack) > 0 {
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render(strings.Join(p.TechStack, " · ")))
	}
	if p.DemoURL != "" {
		b.WriteString("\n\n" + dimStyle.Render("demo   ") + p.DemoURL)
	}
	if p.GithubURL != "" {
		b.WriteString("\n" + dimStyle.Render("source ") + p.GithubURL)
	}
	return panelStyle.Render(b.String())
}

func (m Model) renderFooter() string {
	keys := fmt.Sprintf("%s orbit  %s zoom  %s focus  %s select  %s close  %s quit",
		footerKeyStyle.Render("←→↑↓"),
		footerKeyStyle.Render("+/-"),
		footerKeyStyle.Render("tab"),
		footerKeyStyle.Render("enter"),
		footerKeyStyle.Render("esc"),
		footerKeyStyle.Render("q"),
	)
	return keys + "\n" + dimStyle.Render("compose µs ") + createSparkline(m.composeTimes)
}

// createSparkline renders recent compose latencies.
func createSparkline(data []float64) string {
	if len(data) == 0 {
		return dimStyle.Render("no data")
	}
	spark := sparkline.New(sparklineWidth, sparklineHeight)
	for _, v := range data {
		spark.Push(v)
	}
	return spark.View()
}
