package envelope

import (
	"encoding/json"
	"net/http"

	"github.com/flujofacil/flujofacil/internal/api"
	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/gorilla/mux"
)

type EnvelopeDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	MonthlyBudget api.Money `json:"monthlyBudget"`
}

type EnvelopeHandler struct {
	service EnvelopeService
}

func NewEnvelopeHandler(service EnvelopeService) *EnvelopeHandler {
	return &EnvelopeHandler{service}
}

func (handler *EnvelopeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	envelopes, err := handler.service.GetAll(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	dtos := make([]EnvelopeDTO, 0, len(envelopes))
	for _, env := range envelopes {
		dtos = append(dtos, toDTO(env))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *EnvelopeHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto EnvelopeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(r.Context(), fromDTO(dto))
	if err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *EnvelopeHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto EnvelopeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dto.ID = mux.Vars(r)["id"]

	updated, err := handler.service.Update(r.Context(), fromDTO(dto))
	if err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *EnvelopeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toDTO(env ledger.Envelope) EnvelopeDTO {
	return EnvelopeDTO{
		ID:            env.ID,
		Name:          env.Name,
		MonthlyBudget: api.MoneyOf(env.MonthlyBudget),
	}
}

func fromDTO(dto EnvelopeDTO) ledger.Envelope {
	return ledger.Envelope{
		ID:            dto.ID,
		Name:          dto.Name,
		MonthlyBudget: dto.MonthlyBudget.Decimal,
	}
}
