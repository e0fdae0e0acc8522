package gallery

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors.
var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrEmptyProjectID    = errors.New("project ID cannot be empty")
	ErrEmptyProjectTitle = errors.New("project title cannot be empty")
	ErrInvalidProjectID  = errors.New("invalid project ID")
)

// Project is one portfolio entry, rendered as a single 3D object.
type Project struct {
	// ID is the unique project identifier (UUID), stable for the session.
	ID string `json:"id"`

	// Title is the display name. It is also the sole seed for the
	// project's derived shape and color.
	Title string `json:"title"`

	// Description is the long-form text shown in the detail panel.
	Description string `json:"description"`

	// TechStack lists technologies in display order.
	TechStack []string `json:"tech_stack"`

	// ImageURL points at the project's preview image.
	ImageURL string `json:"image_url"`

	// DemoURL is an optional link to a live demo.
	DemoURL string `json:"demo_url,omitempty"`

	// GithubURL is an optional link to the source repository.
	GithubURL string `json:"github_url,omitempty"`

	// Category groups projects in the detail panel.
	Category string `json:"category"`

	// CreatedDate is when the project record was created.
	CreatedDate time.Time `json:"created_date"`

	// Featured marks projects highlighted in listings.
	Featured bool `json:"featured"`
}

// NewProject creates a project with a generated UUID and creation time.
func NewProject(title string) (*Project, error) {
	if title == "" {
		return nil, ErrEmptyProjectTitle
	}
	return &Project{
		ID:          uuid.New().String(),
		Title:       title,
		CreatedDate: time.Now().UTC(),
	}, nil
}

// Validate checks that the project can be stored and rendered.
//
// A missing title is deliberately NOT an error here: the scene engine
// fails closed on empty titles (default shape and color) rather than
// rejecting the record. Only identity problems are fatal.
func (p *Project) Validate() error {
	if p.ID == "" {
		return ErrEmptyProjectID
	}
	if _, err := uuid.Parse(p.ID); err != nil {
		return ErrInvalidProjectID
	}
	return nil
}

// StatusCheck is a client liveness ping recorded by the API.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewStatusCheck creates a status check for the named client.
func NewStatusCheck(clientName string) StatusCheck {
	return StatusCheck{
		ID:         uuid.New().String(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
}
