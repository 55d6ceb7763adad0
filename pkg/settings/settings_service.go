package settings

import (
	"context"

	"github.com/flujofacil/flujofacil/pkg/ledger"
	log "github.com/sirupsen/logrus"
)

type SettingsService interface {
	GetPreferences(ctx context.Context) (ledger.Preferences, error)
	UpdatePreferences(ctx context.Context, prefs ledger.Preferences) (ledger.Preferences, error)
	Reset(ctx context.Context) error
}

type SettingsServiceImpl struct {
	store *ledger.Store
}

func NewSettingsServiceImpl(store *ledger.Store) *SettingsServiceImpl {
	return &SettingsServiceImpl{store: store}
}

func (s *SettingsServiceImpl) GetPreferences(ctx context.Context) (ledger.Preferences, error) {
	var prefs ledger.Preferences
	s.store.View(func(d *ledger.Data) {
		prefs = d.Preferences
	})
	return prefs, nil
}

// UpdatePreferences stores the presentation strings. Blank fields fall back
// to the defaults instead of leaving the UI unlabeled.
func (s *SettingsServiceImpl) UpdatePreferences(ctx context.Context, prefs ledger.Preferences) (ledger.Preferences, error) {
	defaults := ledger.DefaultPreferences()
	if prefs.PrimaryIncomeLabel == "" {
		prefs.PrimaryIncomeLabel = defaults.PrimaryIncomeLabel
	}
	if prefs.Theme == "" {
		prefs.Theme = defaults.Theme
	}
	err := s.store.Update(func(d *ledger.Data) error {
		d.Preferences = prefs
		return nil
	})
	if err != nil {
		return ledger.Preferences{}, err
	}
	return prefs, nil
}

// Reset wipes the whole ledger back to an empty state.
func (s *SettingsServiceImpl) Reset(ctx context.Context) error {
	log.Warn("Resetting ledger, all data will be lost")
	s.store.Replace(ledger.NewData())
	return nil
}
