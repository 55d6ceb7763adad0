package app

import (
	"encoding/json"
	"net/http"

	"github.com/flujofacil/flujofacil/pkg/ledger"
)

// Version is set at build time.
var Version = "dev"

type StatusDTO struct {
	Version    string `json:"version"`
	Persisting bool   `json:"persisting"`
	FlushError string `json:"flushError,omitempty"`
}

// StatusHandler reports whether the last ledger flush made it to disk. The
// app keeps serving from memory either way; this is how the UI learns that
// durability is degraded.
type StatusHandler struct {
	store *ledger.Store
}

func NewStatusHandler(store *ledger.Store) *StatusHandler {
	return &StatusHandler{store: store}
}

func (handler *StatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	dto := StatusDTO{Version: Version, Persisting: true}
	if err := handler.store.LastFlushError(); err != nil {
		dto.Persisting = false
		dto.FlushError = err.Error()
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
