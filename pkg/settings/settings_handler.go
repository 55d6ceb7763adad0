package settings

import (
	"encoding/json"
	"net/http"

	"github.com/flujofacil/flujofacil/internal/api"
	"github.com/flujofacil/flujofacil/pkg/ledger"
)

type PreferencesDTO struct {
	PrimaryIncomeLabel string `json:"primaryIncomeLabel"`
	Theme              string `json:"theme"`
}

type SettingsHandler struct {
	service SettingsService
}

func NewSettingsHandler(service SettingsService) *SettingsHandler {
	return &SettingsHandler{service}
}

func (handler *SettingsHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	prefs, err := handler.service.GetPreferences(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toDTO(prefs)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *SettingsHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto PreferencesDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	prefs, err := handler.service.UpdatePreferences(r.Context(), ledger.Preferences{
		PrimaryIncomeLabel: dto.PrimaryIncomeLabel,
		Theme:              dto.Theme,
	})
	if err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toDTO(prefs)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *SettingsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.Reset(r.Context()); err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toDTO(prefs ledger.Preferences) PreferencesDTO {
	return PreferencesDTO{
		PrimaryIncomeLabel: prefs.PrimaryIncomeLabel,
		Theme:              prefs.Theme,
	}
}
