// Package projects aggregates project records from the GitHub API, the local
// projects file, and the database into the single list the site renders.
package projects

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/leonardomurakami/portfolio/internal/types"
)

// GitHubSource lists repositories from the remote hosting API.
type GitHubSource interface {
	Repositories(ctx context.Context, limit int) ([]types.Project, error)
}

// FileSource lists projects from the local flat file.
type FileSource interface {
	LoadProjects() ([]types.Project, error)
}

// DatabaseSource lists projects from the relational store.
type DatabaseSource interface {
	ListProjects(ctx context.Context) ([]types.Project, error)
}

// Service merges the three sources. Any of them may be nil.
type Service struct {
	github GitHubSource
	file   FileSource
	db     DatabaseSource
	limit  int
}

// NewService creates an aggregation service. limit caps the number of GitHub
// repositories fetched; zero means the client default.
func NewService(github GitHubSource, file FileSource, db DatabaseSource, limit int) *Service {
	return &Service{github: github, file: file, db: db, limit: limit}
}

// List returns the merged project list, filtered by the query. Sources are
// fetched concurrently; a failing source is logged and contributes nothing,
// so the page renders with whatever data is available.
func (s *Service) List(ctx context.Context, query string) []types.Project {
	var fromGitHub, fromFile, fromDB []types.Project

	g, ctx := errgroup.WithContext(ctx)
	if s.github != nil {
		g.Go(func() error {
			repos, err := s.github.Repositories(ctx, s.limit)
			if err != nil {
				log.Printf("[projects] github source failed: %v", err)
				return nil
			}
			fromGitHub = repos
			return nil
		})
	}
	if s.file != nil {
		g.Go(func() error {
			local, err := s.file.LoadProjects()
			if err != nil {
				log.Printf("[projects] file source failed: %v", err)
				return nil
			}
			fromFile = local
			return nil
		})
	}
	if s.db != nil {
		g.Go(func() error {
			stored, err := s.db.ListProjects(ctx)
			if err != nil {
				log.Printf("[projects] database source failed: %v", err)
				return nil
			}
			fromDB = stored
			return nil
		})
	}
	_ = g.Wait() // source errors are absorbed above

	merged := make([]types.Project, 0, len(fromGitHub)+len(fromFile)+len(fromDB))
	merged = append(merged, fromGitHub...)
	merged = append(merged, fromFile...)
	merged = append(merged, fromDB...)

	return types.FilterProjects(merged, query)
}
