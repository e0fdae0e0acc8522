package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/orrerylabs/orrery/internal/logging"
	"github.com/orrerylabs/orrery/internal/scene"
	"github.com/orrerylabs/orrery/internal/viewer"
)

func init() {
	rootCmd.AddCommand(viewCmd)
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Render the gallery scene in the terminal",
	Long: `Open the interactive terminal viewer for the gallery scene.

The viewer fetches the project list from the server, composes the 3D
scene locally, and renders it with an orbitable camera.

Keys:
  arrows      orbit the camera
  +/-         zoom
  tab         move focus between objects
  enter/space select the focused object
  esc         close the selection
  r           retry after a load failure
  q           quit

Examples:
  # View the local gallery
  orrery view

  # View a remote gallery
  orrery view --server http://gallery.example.com:8123`,
	RunE: runView,
}

func runView(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs go nowhere by default.
	logCfg := logging.NewDefaultConfig()
	logCfg.Level = "error"
	logger, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	model := viewer.NewModel(viewer.NewClient(serverURL), scene.NewDefaultConfig(), logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("viewer exited with error: %w", err)
	}
	return nil
}
