package scene

// ShapeKind enumerates the geometries a project object can take.
type ShapeKind string

// Shape kinds, in derivation order. The order is load-bearing: a title's
// first code point indexes into Shapes.
const (
	ShapeBox         ShapeKind = "box"
	ShapeSphere      ShapeKind = "sphere"
	ShapeOctahedron  ShapeKind = "octahedron"
	ShapeTetrahedron ShapeKind = "tetrahedron"
	ShapeCylinder    ShapeKind = "cylinder"
)

// Shapes is the fixed shape set, indexed by title-derived hash.
var Shapes = []ShapeKind{
	ShapeBox,
	ShapeSphere,
	ShapeOctahedron,
	ShapeTetrahedron,
	ShapeCylinder,
}

// Palette is the fixed six-color palette, indexed by title-derived hash.
// Palette[0] doubles as the fail-closed default for short titles.
var Palette = []string{
	"#8b5cf6", // violet
	"#06b6d4", // cyan
	"#10b981", // emerald
	"#f59e0b", // amber
	"#ef4444", // red
	"#ec4899", // pink
}

// VisualAttributes are the derived, render-stable visuals for one project.
type VisualAttributes struct {
	ShapeKind ShapeKind `json:"shape_kind"`
	Color     string    `json:"color"`
}

// DeriveVisualAttributes maps a project title to its shape and color.
//
// The mapping is a pure function of the title: the first code point picks
// the shape, the second picks the color. Recomputing from the same title
// always yields the same result, so renderers never need to store visual
// state separately from the record itself.
//
// Fails closed: an empty title yields a box, a one-character title yields
// Palette[0].
func DeriveVisualAttributes(title string) VisualAttributes {
	attrs := VisualAttributes{
		ShapeKind: ShapeBox,
		Color:     Palette[0],
	}

	runes := []rune(title)
	if len(runes) == 0 {
		return attrs
	}
	attrs.ShapeKind = Shapes[int(runes[0])%len(Shapes)]
	if len(runes) > 1 {
		attrs.Color = Palette[int(runes[1])%len(Palette)]
	}
	return attrs
}
