// Package types provides type definitions for structured data used throughout the portfolio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Project source values.
const (
	SourceGitHub   = "github"
	SourceLocal    = "local"
	SourceDatabase = "database"
)

// Project represents a single portfolio project, regardless of where the
// record came from.
type Project struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Technologies string `json:"technologies,omitempty"` // comma-separated list
	GitHubURL    string `json:"github_url,omitempty"`
	DemoURL      string `json:"demo_url,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	Stars        int    `json:"stars,omitempty"`
	Language     string `json:"language,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
	Featured     bool   `json:"featured,omitempty"`
	Source       string `json:"source,omitempty"`
}

// Matches reports whether the project matches a search query. The match is a
// case-insensitive substring test against name and description. An empty
// query matches everything.
func (p *Project) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// FilterProjects returns the projects matching the query, preserving order.
func FilterProjects(projects []Project, query string) []Project {
	if query == "" {
		return projects
	}
	filtered := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Matches(query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
