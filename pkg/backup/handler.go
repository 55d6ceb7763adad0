package backup

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/flujofacil/flujofacil/internal/utils"
	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/flujofacil/flujofacil/pkg/month"
	log "github.com/sirupsen/logrus"
)

const maxImportSize = 8 << 20 // 8 MiB is far beyond any real household ledger

type Handler struct {
	store *ledger.Store
	clock utils.Clock
}

func NewHandler(store *ledger.Store, clock utils.Clock) *Handler {
	return &Handler{store: store, clock: clock}
}

// Export downloads the full ledger as a backup document.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var doc []byte
	var err error
	h.store.View(func(d *ledger.Data) {
		doc, err = Encode(*d)
	})
	if err != nil {
		log.Errorf("failed to serialize backup: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("flujofacil_%s.json", month.Of(h.clock.Now()).Key())
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		log.Errorf("failed to write backup response: %v", err)
	}
}

// Import replaces the whole ledger with the uploaded document. The new state
// is built completely before the swap, so a malformed backup leaves the
// current data untouched.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	log.Debug("Importing backup document")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := Decode(body)
	if err != nil {
		var mErr *ledger.MalformedBackupError
		if errors.As(err, &mErr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.store.Replace(data)
	log.Info("Backup imported, ledger replaced")
	w.WriteHeader(http.StatusNoContent)
}
