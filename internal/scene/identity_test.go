package scene

import "testing"

func TestDeriveVisualAttributesDeterminism(t *testing.T) {
	titles := []string{
		"Alpha", "Beta", "Gamma",
		"3D Portfolio Website",
		"日本語タイトル",
		"x",
		"",
	}
	for _, title := range titles {
		first := DeriveVisualAttributes(title)
		second := DeriveVisualAttributes(title)
		if first != second {
			t.Errorf("DeriveVisualAttributes(%q) not deterministic: %+v vs %+v", title, first, second)
		}
	}
}

func TestDeriveVisualAttributesCoverage(t *testing.T) {
	shapes := make(map[ShapeKind]bool, len(Shapes))
	for _, s := range Shapes {
		shapes[s] = true
	}
	colors := make(map[string]bool, len(Palette))
	for _, c := range Palette {
		colors[c] = true
	}

	titles := []string{
		"AI-Powered Chat Application",
		"3D Portfolio Website",
		"E-commerce Platform",
		"Data Visualization Dashboard",
		"Mobile Game Development",
		"Blockchain DeFi Platform",
		"Δelta", "émoji 🎨", "zz",
	}
	for _, title := range titles {
		attrs := DeriveVisualAttributes(title)
		if !shapes[attrs.ShapeKind] {
			t.Errorf("DeriveVisualAttributes(%q).ShapeKind = %q not in shape set", title, attrs.ShapeKind)
		}
		if !colors[attrs.Color] {
			t.Errorf("DeriveVisualAttributes(%q).Color = %q not in palette", title, attrs.Color)
		}
	}
}

func TestDeriveVisualAttributesFailClosed(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		wantShape ShapeKind
		wantColor string
	}{
		{
			name:      "empty title defaults to box and first color",
			title:     "",
			wantShape: ShapeBox,
			wantColor: Palette[0],
		},
		{
			name:      "single rune keeps default color",
			title:     "A", // 'A' = 65, 65 % 5 = 0
			wantShape: ShapeBox,
			wantColor: Palette[0],
		},
		{
			name:      "Alpha",
			title:     "Alpha", // 'A' % 5 = 0, 'l' = 108, 108 % 6 = 0
			wantShape: ShapeBox,
			wantColor: Palette[0],
		},
		{
			name:      "Beta",
			title:     "Beta", // 'B' = 66, 66 % 5 = 1; 'e' = 101, 101 % 6 = 5
			wantShape: ShapeSphere,
			wantColor: Palette[5],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := DeriveVisualAttributes(tt.title)
			if attrs.ShapeKind != tt.wantShape {
				t.Errorf("ShapeKind = %q, want %q", attrs.ShapeKind, tt.wantShape)
			}
			if attrs.Color != tt.wantColor {
				t.Errorf("Color = %q, want %q", attrs.Color, tt.wantColor)
			}
		})
	}
}
