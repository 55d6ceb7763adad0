package envelope

import (
	"context"

	"github.com/flujofacil/flujofacil/pkg/ledger"
)

type EnvelopeService interface {
	GetAll(ctx context.Context) ([]ledger.Envelope, error)
	Create(ctx context.Context, envelope ledger.Envelope) (ledger.Envelope, error)
	Update(ctx context.Context, envelope ledger.Envelope) (ledger.Envelope, error)
	Delete(ctx context.Context, id string) error
}

type EnvelopeServiceImpl struct {
	store        *ledger.Store
	maxEnvelopes int // 0 means unlimited
}

func NewEnvelopeServiceImpl(store *ledger.Store, maxEnvelopes int) *EnvelopeServiceImpl {
	return &EnvelopeServiceImpl{store: store, maxEnvelopes: maxEnvelopes}
}

func (s *EnvelopeServiceImpl) GetAll(ctx context.Context) ([]ledger.Envelope, error) {
	var envelopes []ledger.Envelope
	s.store.View(func(d *ledger.Data) {
		envelopes = append(envelopes, d.Envelopes...)
	})
	return envelopes, nil
}

func (s *EnvelopeServiceImpl) Create(ctx context.Context, envelope ledger.Envelope) (ledger.Envelope, error) {
	if err := validate(envelope); err != nil {
		return ledger.Envelope{}, err
	}
	envelope.ID = s.store.NewID()
	err := s.store.Update(func(d *ledger.Data) error {
		if s.maxEnvelopes > 0 && len(d.Envelopes) >= s.maxEnvelopes {
			return ledger.Validationf("envelope limit reached (%d)", s.maxEnvelopes)
		}
		d.AddEnvelope(envelope)
		return nil
	})
	if err != nil {
		return ledger.Envelope{}, err
	}
	return envelope, nil
}

func (s *EnvelopeServiceImpl) Update(ctx context.Context, envelope ledger.Envelope) (ledger.Envelope, error) {
	if err := validate(envelope); err != nil {
		return ledger.Envelope{}, err
	}
	err := s.store.Update(func(d *ledger.Data) error {
		return d.UpdateEnvelope(envelope)
	})
	if err != nil {
		return ledger.Envelope{}, err
	}
	return envelope, nil
}

// Delete removes the envelope only. Expenses keep their category string, so
// spending history is unaffected.
func (s *EnvelopeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.store.Update(func(d *ledger.Data) error {
		return d.RemoveEnvelope(id)
	})
}

func validate(envelope ledger.Envelope) error {
	if envelope.Name == "" {
		return ledger.Validationf("envelope name is required")
	}
	if envelope.MonthlyBudget.IsNegative() {
		return ledger.Validationf("envelope budget must not be negative")
	}
	return nil
}
