package note

import (
	"context"

	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/flujofacil/flujofacil/pkg/month"
)

type NoteService interface {
	Get(ctx context.Context, ym month.YearMonth) (string, error)
	Set(ctx context.Context, ym month.YearMonth, text string) error
}

type NoteServiceImpl struct {
	store *ledger.Store
}

func NewNoteServiceImpl(store *ledger.Store) *NoteServiceImpl {
	return &NoteServiceImpl{store: store}
}

func (s *NoteServiceImpl) Get(ctx context.Context, ym month.YearMonth) (string, error) {
	var text string
	s.store.View(func(d *ledger.Data) {
		text = d.NotesByMonth[ym.Key()]
	})
	return text, nil
}

// Set stores the month's free-text note. An empty text clears the entry so
// the notes map only holds months that actually have something written down.
func (s *NoteServiceImpl) Set(ctx context.Context, ym month.YearMonth, text string) error {
	return s.store.Update(func(d *ledger.Data) error {
		if text == "" {
			delete(d.NotesByMonth, ym.Key())
			return nil
		}
		d.NotesByMonth[ym.Key()] = text
		return nil
	})
}
