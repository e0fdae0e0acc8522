package gallery

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// ReadSeedFile loads project records from a JSON file (an array of
// Project objects). Records without an ID get one generated, so seed
// files can be written by hand; records with an explicit ID keep it,
// which keeps vertical jitter stable across re-imports.
func ReadSeedFile(path string) ([]Project, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var projects []Project
	if err := json.Unmarshal(content, &projects); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	for i := range projects {
		if projects[i].ID == "" {
			projects[i].ID = uuid.New().String()
		}
		if err := projects[i].Validate(); err != nil {
			return nil, fmt.Errorf("seed project %d (%q): %w", i, projects[i].Title, err)
		}
	}
	return projects, nil
}
