package note

import (
	"encoding/json"
	"net/http"

	"github.com/flujofacil/flujofacil/internal/api"
	"github.com/flujofacil/flujofacil/pkg/month"
	"github.com/gorilla/mux"
)

type NoteDTO struct {
	Month string `json:"month"`
	Text  string `json:"text"`
}

type NoteHandler struct {
	service NoteService
}

func NewNoteHandler(service NoteService) *NoteHandler {
	return &NoteHandler{service}
}

func (handler *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ym, ok := month.FromKey(mux.Vars(r)["month"])
	if !ok {
		http.Error(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
		return
	}

	text, err := handler.service.Get(r.Context(), ym)
	if err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(NoteDTO{Month: ym.Key(), Text: text}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *NoteHandler) Set(w http.ResponseWriter, r *http.Request) {
	ym, ok := month.FromKey(mux.Vars(r)["month"])
	if !ok {
		http.Error(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
		return
	}

	var dto NoteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.Set(r.Context(), ym, dto.Text); err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
