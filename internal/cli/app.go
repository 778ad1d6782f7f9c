// Package cli implements the interactive menu over the authentication
// service: registration with QR provisioning, authentication, user
// listing and confirmed bulk deletion.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/biohash-labs/biohash/internal/auth"
	"github.com/biohash-labs/biohash/internal/biometric"
	"github.com/biohash-labs/biohash/internal/config"
	"github.com/biohash-labs/biohash/internal/cryptox"
	"github.com/biohash-labs/biohash/internal/filex"
	"github.com/biohash-labs/biohash/internal/logging"
	"github.com/biohash-labs/biohash/internal/store"
)

type App struct {
	config  *config.Config
	service *auth.Service
	repo    store.Repository
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the store backend, the encryption key and the service
// according to the given configuration.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	repo, err := openRepository(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	if err := filex.EnsureDir(filepath.Dir(c.KeyPath)); err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("key init error: %w", err)
	}
	key, err := cryptox.LoadOrGenerateKey(c.KeyPath)
	if err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("key init error: %w", err)
	}

	service := auth.NewService(repo, biometric.NewSimulatedSampler(), key, c.Issuer, logger)

	return &App{
		config:  c,
		service: service,
		repo:    repo,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func openRepository(ctx context.Context, c *config.Config) (store.Repository, error) {
	switch c.Backend {
	case config.BackendJSON:
		if err := filex.EnsureDir(filepath.Dir(c.StorePath)); err != nil {
			return nil, err
		}
		return store.NewJSONRepository(c.StorePath)
	case config.BackendSQLite:
		return store.OpenSQLite(ctx, c.DatabaseDSN)
	case config.BackendPostgres:
		return store.OpenPostgres(ctx, c.DatabaseDSN)
	case config.BackendMemory:
		return store.NewInMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", c.Backend)
	}
}

// Run drives the interactive menu until the user exits.
func (a *App) Run(ctx context.Context) {
	runMenu(ctx, a.reader, a.out, a)
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.repo.Close()
}
