package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/flujofacil/flujofacil/pkg/backup"
	"github.com/flujofacil/flujofacil/pkg/ledger"
	log "github.com/sirupsen/logrus"
)

// SnapshotStore persists the serialized ledger document as a single row,
// replaced on every flush. It implements ledger.Persister.
type SnapshotStore struct {
	db *sql.DB
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Save serializes the ledger and upserts the snapshot row.
func (s *SnapshotStore) Save(data ledger.Data) error {
	doc, err := backup.Encode(data)
	if err != nil {
		return fmt.Errorf("could not serialize ledger: %w", err)
	}

	query := `INSERT INTO snapshot (id, document, updated_at) VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`
	if _, err := s.db.Exec(query, string(doc), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("could not write snapshot: %w", err)
	}
	return nil
}

// Load reads the last persisted ledger, reporting found=false on a fresh
// database.
func (s *SnapshotStore) Load() (ledger.Data, bool, error) {
	var document string
	err := s.db.QueryRow("SELECT document FROM snapshot WHERE id = 1").Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return ledger.NewData(), false, nil
	}
	if err != nil {
		return ledger.NewData(), false, fmt.Errorf("could not read snapshot: %w", err)
	}

	data, err := backup.Decode([]byte(document))
	if err != nil {
		// A corrupt snapshot must not brick the app; start fresh and keep the
		// broken document out of the way.
		log.Errorf("stored snapshot is unreadable, starting with an empty ledger: %v", err)
		return ledger.NewData(), false, nil
	}
	return data, true, nil
}
