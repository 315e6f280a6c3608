package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/leonardomurakami/portfolio/internal/config"
	"github.com/leonardomurakami/portfolio/internal/db"
	"github.com/leonardomurakami/portfolio/internal/store"
	"github.com/leonardomurakami/portfolio/internal/types"
)

var (
	seedFile     bool
	seedDatabase bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate sample project data",
	Long:  `Write sample projects to the local projects file, and optionally into the database, for development and testing.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedFile, "file", true, "Write sample projects to the local projects file")
	seedCmd.Flags().BoolVar(&seedDatabase, "database", false, "Insert sample projects into the database (requires DATABASE_URL)")
	rootCmd.AddCommand(seedCmd)
}

func sampleProjects() []types.Project {
	return []types.Project{
		{
			Name:         "E-Commerce Platform",
			Description:  "A full-stack e-commerce solution with user authentication, product catalog, shopping cart, payment processing, and an admin dashboard.",
			Technologies: "Go, React, PostgreSQL, Docker, Stripe",
			GitHubURL:    "https://github.com/leonardomurakami/ecommerce-platform",
			DemoURL:      "https://ecommerce-demo.murakami.dev",
			Featured:     true,
			Source:       types.SourceLocal,
		},
		{
			Name:         "Task Management API",
			Description:  "RESTful API for task management with user authentication, team collaboration, and real-time updates over WebSockets.",
			Technologies: "Go, PostgreSQL, WebSockets, Redis",
			GitHubURL:    "https://github.com/leonardomurakami/task-management-api",
			Featured:     true,
			Source:       types.SourceLocal,
		},
		{
			Name:         "Data Analytics Dashboard",
			Description:  "Interactive dashboard for data visualization and analytics using modern web technologies and chart libraries.",
			Technologies: "JavaScript, React, D3.js, Node.js, MongoDB",
			GitHubURL:    "https://github.com/leonardomurakami/analytics-dashboard",
			DemoURL:      "https://analytics-demo.murakami.dev",
			Source:       types.SourceLocal,
		},
		{
			Name:         "Personal Finance Tracker",
			Description:  "Mobile-friendly web application for tracking personal expenses, income, and financial goals with visualizations.",
			Technologies: "Python, Flask, Chart.js, SQLite, Bootstrap",
			GitHubURL:    "https://github.com/leonardomurakami/finance-tracker",
			Source:       types.SourceLocal,
		},
		{
			Name:         "Weather Forecast App",
			Description:  "Real-time weather application with location-based forecasts, weather maps, and historical data analysis.",
			Technologies: "JavaScript, React, OpenWeather API, Tailwind CSS",
			GitHubURL:    "https://github.com/leonardomurakami/weather-app",
			DemoURL:      "https://weather-demo.murakami.dev",
			Source:       types.SourceLocal,
		},
	}
}

func runSeed(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	projects := sampleProjects()

	if seedFile {
		fileStore := store.New(cfg.DataDir)
		if err := fileStore.SaveProjects(projects); err != nil {
			return fmt.Errorf("failed to seed projects file: %w", err)
		}
		log.Printf("[seed] wrote %d projects to %s/%s", len(projects), cfg.DataDir, store.ProjectsFile)
	}

	if !seedDatabase {
		return nil
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("--database requires DATABASE_URL to be set")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	for _, p := range projects {
		id, err := database.InsertProject(ctx, p)
		if err != nil {
			return err
		}
		log.Printf("[seed] inserted project %q as %s", p.Name, id)
	}
	return nil
}
