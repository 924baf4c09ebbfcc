package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/casefile/internal/config"
	"github.com/phrazzld/casefile/internal/events"
	"github.com/phrazzld/casefile/internal/platform/memory"
	"github.com/phrazzld/casefile/internal/platform/storage"
	"github.com/phrazzld/casefile/internal/service"
	"github.com/phrazzld/casefile/internal/store"
)

// application holds the shared application dependencies so they can be
// released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	backend  *storage.Backend
	sessions store.SessionStore

	eventEmitter    events.EventEmitter
	caseService     service.CaseService
	identityService service.IdentityService
}

// newApplication wires the services over an opened storage backend.
func newApplication(cfg *config.Config, logger *slog.Logger, backend *storage.Backend) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		backend:  backend,
		sessions: memory.NewSessionStore(),
	}

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewAuditLogHandler(logger))
	app.eventEmitter = emitter

	var err error
	app.caseService, err = service.NewCaseService(backend.Cases, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create case service: %w", err)
	}

	app.identityService, err = service.NewIdentityService(app.sessions, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity service: %w", err)
	}

	return app, nil
}

// cleanup releases the storage backend.
func (app *application) cleanup() {
	if err := app.backend.Close(); err != nil {
		app.logger.Error("failed to close storage backend", "error", err)
	}
}
