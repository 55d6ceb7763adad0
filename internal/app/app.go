package app

import (
	"net/http"
	"time"

	"github.com/flujofacil/flujofacil/internal/config"
	"github.com/flujofacil/flujofacil/internal/storage"
	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, snapshot storage, router, and server
// lifecycle.
type Application struct {
	cfg    config.Application
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	// Snapshot database + migrations
	db, err := storage.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := storage.Migrate(cfg.Database); err != nil {
		return nil, err
	}

	// Load the last persisted ledger into memory; from here on the store is
	// authoritative and the database only receives flushes.
	snapshot := storage.NewSnapshotStore(db)
	data, found, err := snapshot.Load()
	if err != nil {
		return nil, err
	}
	if found {
		log.Info("Restored ledger from snapshot")
	} else {
		log.Info("No snapshot found, starting with an empty ledger")
	}
	store := ledger.NewStore(data, snapshot)

	r := mux.NewRouter()

	deps := BuildDependencies(store, cfg)

	SetupMiddleware(r)

	RegisterRoutes(r, deps)

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, router: r, srv: srv}, nil
}

// Run starts the HTTP server and blocks.
func (a *Application) Run() error {
	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
