package api

import (
	"errors"
	"net/http"

	"github.com/flujofacil/flujofacil/pkg/ledger"
	log "github.com/sirupsen/logrus"
)

// Error maps domain errors onto HTTP status codes. Every handler goes through
// here so validation failures, missing records and guarded mirrors translate
// consistently.
func Error(w http.ResponseWriter, err error) {
	var validationErr *ledger.ValidationError
	var guardedErr *ledger.GuardedDeletionError
	var malformedErr *ledger.MalformedBackupError

	switch {
	case errors.As(err, &validationErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &malformedErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ledger.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &guardedErr):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("request failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
