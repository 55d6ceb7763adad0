package ledger

import (
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Data is the full ledger state: every collection the application owns.
// It is a plain value so tests can build isolated instances and the backup
// codec can treat the whole ledger as one document.
type Data struct {
	BaseIncome    BaseIncome
	FixedExpenses []FixedExpense
	Envelopes     []Envelope
	PiggyBanks    []PiggyBank
	Incomes       []Income
	Expenses      []Expense
	NotesByMonth  map[string]string
	Preferences   Preferences
}

// NewData returns an empty ledger with defaults applied.
func NewData() Data {
	return Data{
		NotesByMonth: map[string]string{},
		Preferences:  DefaultPreferences(),
	}
}

// Clone deep-copies the ledger state so mutations never leak across the
// store boundary.
func (d Data) Clone() Data {
	c := d
	c.FixedExpenses = append([]FixedExpense(nil), d.FixedExpenses...)
	c.Envelopes = append([]Envelope(nil), d.Envelopes...)
	c.PiggyBanks = append([]PiggyBank(nil), d.PiggyBanks...)
	c.Incomes = append([]Income(nil), d.Incomes...)
	c.Expenses = append([]Expense(nil), d.Expenses...)
	c.NotesByMonth = make(map[string]string, len(d.NotesByMonth))
	for k, v := range d.NotesByMonth {
		c.NotesByMonth[k] = v
	}
	return c
}

// Persister flushes a ledger snapshot to durable local storage.
type Persister interface {
	Save(data Data) error
}

// Store owns the in-memory ledger and routes every mutation through a single
// atomic update path followed by a best-effort persistence flush. A failed
// flush is recorded and logged but never rolls back memory.
type Store struct {
	mu        sync.RWMutex
	data      Data
	persister Persister
	newID     func() string
	flushErr  error
}

// NewStore builds a store around the given initial state. persister may be
// nil in tests.
func NewStore(initial Data, persister Persister) *Store {
	if initial.NotesByMonth == nil {
		initial.NotesByMonth = map[string]string{}
	}
	return &Store{
		data:      initial.Clone(),
		persister: persister,
		newID:     uuid.NewString,
	}
}

// NewID generates a fresh opaque record id.
func (s *Store) NewID() string {
	return s.newID()
}

// View runs fn with read access to the ledger. fn must not retain or mutate
// the data.
func (s *Store) View(fn func(d *Data)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

// Update applies fn to a copy of the ledger and swaps it in only when fn
// succeeds, so a rejected operation leaves no partial writes behind. On
// success the new state is flushed.
func (s *Store) Update(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.data.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.data = next
	s.flushLocked()
	return nil
}

// Replace swaps in a completely new ledger state (restore path).
func (s *Store) Replace(data Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if data.NotesByMonth == nil {
		data.NotesByMonth = map[string]string{}
	}
	s.data = data.Clone()
	s.flushLocked()
}

// LastFlushError returns the PersistenceWriteError of the most recent flush,
// or nil when the last flush succeeded.
func (s *Store) LastFlushError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flushErr
}

func (s *Store) flushLocked() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(s.data.Clone()); err != nil {
		s.flushErr = &PersistenceWriteError{Cause: err}
		log.Warnf("ledger flush failed, in-memory state remains authoritative: %v", err)
		return
	}
	s.flushErr = nil
}
