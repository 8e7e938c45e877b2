// Package testutil starts throwaway backends for tests that need the whole
// stack: SQLite storage, the echo routes and an API client pointed at them.
package testutil

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/thenoetrevino/plantel/internal/api"
	"github.com/thenoetrevino/plantel/internal/database"
	"github.com/thenoetrevino/plantel/internal/server"
)

// Backend is a running development backend over an in-memory database
type Backend struct {
	Server *httptest.Server
	Repo   *database.Repository
}

// URL returns the API base URL
func (b *Backend) URL() string {
	return b.Server.URL + "/api"
}

// Client returns an API client for the backend
func (b *Backend) Client() *api.Client {
	return api.New(api.Options{BaseURL: b.URL()})
}

// SetupTestRepo creates an in-memory database with full schema
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return database.NewRepository(db)
}

// StartBackend serves the API over a fresh database. With seed set the
// database holds the demo data: athletes 1-6, programs 1 (athletes 2 and 4),
// 2 (athlete 5) and 3 (empty).
func StartBackend(t *testing.T, seed bool) *Backend {
	t.Helper()
	repo := SetupTestRepo(t)
	if seed {
		if err := database.Seed(context.Background(), repo); err != nil {
			t.Fatalf("Failed to seed database: %v", err)
		}
	}

	srv := httptest.NewServer(server.New(repo))
	t.Cleanup(srv.Close)
	return &Backend{Server: srv, Repo: repo}
}
