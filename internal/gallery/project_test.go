package gallery

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewProject(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{
			name:    "valid title",
			title:   "3D Portfolio Website",
			wantErr: false,
		},
		{
			name:    "empty title",
			title:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProject(tt.title)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewProject() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if p.Title != tt.title {
				t.Errorf("p.Title = %q, want %q", p.Title, tt.title)
			}
			if _, err := uuid.Parse(p.ID); err != nil {
				t.Errorf("p.ID = %q is not a valid UUID: %v", p.ID, err)
			}
			if p.CreatedDate.IsZero() {
				t.Error("p.CreatedDate should be set")
			}
		})
	}
}

func TestProjectValidate(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		wantErr error
	}{
		{
			name:    "valid",
			project: Project{ID: uuid.New().String(), Title: "Alpha"},
			wantErr: nil,
		},
		{
			name:    "empty title is allowed",
			project: Project{ID: uuid.New().String()},
			wantErr: nil,
		},
		{
			name:    "missing id",
			project: Project{Title: "Alpha"},
			wantErr: ErrEmptyProjectID,
		},
		{
			name:    "malformed id",
			project: Project{ID: "not-a-uuid", Title: "Alpha"},
			wantErr: ErrInvalidProjectID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.project.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSampleProjects(t *testing.T) {
	samples := SampleProjects()
	if len(samples) != 6 {
		t.Fatalf("len(SampleProjects()) = %d, want 6", len(samples))
	}

	seen := make(map[string]bool)
	for _, p := range samples {
		if err := p.Validate(); err != nil {
			t.Errorf("sample %q failed validation: %v", p.Title, err)
		}
		if p.Title == "" {
			t.Error("sample project with empty title")
		}
		if seen[p.ID] {
			t.Errorf("duplicate sample ID %s", p.ID)
		}
		seen[p.ID] = true
	}
}
