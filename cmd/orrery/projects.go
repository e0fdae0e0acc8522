package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/orrerylabs/orrery/internal/gallery"
)

var (
	// projects command flags
	projTitle       string
	projDescription string
	projTechStack   []string
	projCategory    string
	projFeatured    bool
	projOutputJSON  bool
)

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
	projectsCmd.AddCommand(projectsSeedCmd)

	projectsCmd.PersistentFlags().BoolVar(&projOutputJSON, "json", false, "Output results as JSON")

	projectsCreateCmd.Flags().StringVar(&projTitle, "title", "", "Project title (required)")
	projectsCreateCmd.Flags().StringVar(&projDescription, "description", "", "Project description")
	projectsCreateCmd.Flags().StringSliceVar(&projTechStack, "tech", nil, "Technology stack entries")
	projectsCreateCmd.Flags().StringVar(&projCategory, "category", "", "Project category")
	projectsCreateCmd.Flags().BoolVar(&projFeatured, "featured", false, "Mark the project as featured")
	_ = projectsCreateCmd.MarkFlagRequired("title")
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage project records",
	Long: `Manage the project records behind the gallery scene.

Examples:
  # List all projects
  orrery projects list

  # Create a project
  orrery projects create --title "Neural Canvas" --category "AI/ML"

  # Seed the sample portfolio
  orrery projects seed`,
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE:  runProjectsList,
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	RunE:  runProjectsCreate,
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsDelete,
}

var projectsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all projects with the sample portfolio",
	RunE:  runProjectsSeed,
}

func apiClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

func decodeError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, body.Message)
	}
	return fmt.Errorf("server returned status %d", resp.StatusCode)
}

func runProjectsList(cmd *cobra.Command, args []string) error {
	resp, err := apiClient().Get(serverURL + "/api/v1/projects")
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	var projects []gallery.Project
	if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if projOutputJSON {
		return json.NewEncoder(os.Stdout).Encode(projects)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tFEATURED\tTECH")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n",
			p.ID, p.Title, p.Category, p.Featured, strings.Join(p.TechStack, ","))
	}
	return w.Flush()
}

func runProjectsCreate(cmd *cobra.Command, args []string) error {
	reqBody := map[string]any{
		"title":       projTitle,
		"description": projDescription,
		"tech_stack":  projTechStack,
		"category":    projCategory,
		"featured":    projFeatured,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := apiClient().Post(serverURL+"/api/v1/projects", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return decodeError(resp)
	}

	var created gallery.Project
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if projOutputJSON {
		return json.NewEncoder(os.Stdout).Encode(created)
	}
	fmt.Printf("Created project %s (%s)\n", created.Title, created.ID)
	return nil
}

func runProjectsDelete(cmd *cobra.Command, args []string) error {
	req, err := http.NewRequest(http.MethodDelete, serverURL+"/api/v1/projects/"+args[0], nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := apiClient().Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return decodeError(resp)
	}
	fmt.Printf("Deleted project %s\n", args[0])
	return nil
}

func runProjectsSeed(cmd *cobra.Command, args []string) error {
	resp, err := apiClient().Post(serverURL+"/api/v1/projects/sample", "application/json", nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return decodeError(resp)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	fmt.Println(body.Message)
	return nil
}
