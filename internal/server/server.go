// Package server provides the HTTP surface of the portfolio site: HTML
// pages, HTMX partials, the contact pipeline, and the resume PDF export.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leonardomurakami/portfolio/internal/config"
	"github.com/leonardomurakami/portfolio/internal/db"
	"github.com/leonardomurakami/portfolio/internal/github"
	"github.com/leonardomurakami/portfolio/internal/mail"
	"github.com/leonardomurakami/portfolio/internal/projects"
	"github.com/leonardomurakami/portfolio/internal/resume"
	"github.com/leonardomurakami/portfolio/internal/server/ratelimit"
	"github.com/leonardomurakami/portfolio/internal/store"
	"github.com/leonardomurakami/portfolio/internal/types"
	"github.com/leonardomurakami/portfolio/internal/web"
)

// projectLister yields the merged, filtered project list.
type projectLister interface {
	List(ctx context.Context, query string) []types.Project
}

// contactLog appends submissions to the flat-file log.
type contactLog interface {
	AppendContact(sub types.ContactSubmission) error
}

// contactDB mirrors submissions into the database. May be nil.
type contactDB interface {
	SaveContact(ctx context.Context, sub types.ContactSubmission) error
}

// pdfGenerator produces the localized resume PDF.
type pdfGenerator interface {
	Generate(ctx context.Context, language string) ([]byte, string, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	renderer    *Renderer
	projects    projectLister
	contacts    contactLog
	database    contactDB
	mailer      mail.Sender
	pdf         pdfGenerator
	rateLimiter *ratelimit.Limiter
	closeDB     func()
}

// New wires up a server from configuration. The database connection is
// optional; everything else is constructed from embedded assets.
func New(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	renderer, err := NewRenderer(web.Templates)
	if err != nil {
		return nil, err
	}

	generator, err := resume.NewGenerator(web.Templates, web.Locales, &resume.ChromeConverter{Verbose: cfg.Debug})
	if err != nil {
		return nil, err
	}

	fileStore := store.New(cfg.DataDir)

	var database *db.DB
	var dbProjects projects.DatabaseSource
	var dbContacts contactDB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		dbProjects = database
		dbContacts = database
	}

	s := &Server{
		renderer: renderer,
		projects: projects.NewService(
			github.NewClient(cfg.GitHubUsername, cfg.GitHubToken),
			fileStore,
			dbProjects,
			github.DefaultLimit,
		),
		contacts:    fileStore,
		database:    dbContacts,
		mailer:      mail.NewSMTPSender(mail.Config{Host: cfg.SMTPHost, Port: cfg.SMTPPort, Username: cfg.SMTPUsername, Password: cfg.SMTPPassword, ContactEmail: cfg.ContactEmail}),
		pdf:         generator,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF generation spawns a browser
		IdleTimeout:  60 * time.Second,
	}

	if database != nil {
		s.closeDB = database.Close
	}
	return s, nil
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /about", s.handleAbout)
	mux.HandleFunc("GET /projects", s.handleProjects)
	mux.HandleFunc("GET /contact", s.handleContactPage)
	mux.HandleFunc("POST /contact", s.handleContactSubmit)
	mux.HandleFunc("GET /resume", s.handleResumePage)
	mux.HandleFunc("GET /resume/download", s.handleResumeDownload)

	// HTMX endpoints for dynamic content
	mux.HandleFunc("GET /htmx/projects/search", s.handleProjectSearch)
	mux.HandleFunc("POST /htmx/theme/toggle", s.handleThemeToggle)

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /static/", http.FileServerFS(web.Static))

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.closeDB != nil {
		s.closeDB()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit enforces per-client request limits.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier (IP) from the request.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
