package scene

// Emphasis is the set of visual-intensity parameters derived from
// selection state for one object.
type Emphasis struct {
	Scale             float64 `json:"scale"`
	RotationIntensity float64 `json:"rotation_intensity"`
	FloatIntensity    float64 `json:"float_intensity"`
	Speed             float64 `json:"speed"`
	LabelVisible      bool    `json:"label_visible"`
}

// Emphasis values for the two selection states. At most one object can
// report selectedEmphasis at a time; that is guaranteed structurally by
// Selection holding a single ID, not by per-object checks.
var (
	baseEmphasis = Emphasis{
		Scale:             1.0,
		RotationIntensity: 1,
		FloatIntensity:    1,
		Speed:             1,
	}
	selectedEmphasis = Emphasis{
		Scale:             1.5,
		RotationIntensity: 2,
		FloatIntensity:    2,
		Speed:             3,
		LabelVisible:      true,
	}
)

// Selection tracks which single project, if any, is highlighted.
//
// The zero value is the unselected state. Selection is not goroutine-safe
// on its own; the Composer serializes access.
type Selection struct {
	selectedID string
}

// Pick handles a pointer pick on the given project.
//
// Picking an unselected project selects it; picking the currently
// selected project closes it (toggle semantics); picking a different
// project retargets directly, with no intermediate close. Returns true
// if the state changed.
func (s *Selection) Pick(id string) bool {
	if id == "" {
		return false
	}
	if s.selectedID == id {
		s.selectedID = ""
		return true
	}
	s.selectedID = id
	return true
}

// Close clears the selection. Calling it while unselected is a no-op.
func (s *Selection) Close() {
	s.selectedID = ""
}

// SelectedID returns the highlighted project's ID, if any.
func (s *Selection) SelectedID() (string, bool) {
	return s.selectedID, s.selectedID != ""
}

// EmphasisFor derives the emphasis parameters for one project from the
// current state.
func (s *Selection) EmphasisFor(id string) Emphasis {
	if id != "" && id == s.selectedID {
		return selectedEmphasis
	}
	return baseEmphasis
}
