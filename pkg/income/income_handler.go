package income

import (
	"encoding/json"
	"net/http"

	"github.com/flujofacil/flujofacil/internal/api"
	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type BaseIncomeDTO struct {
	Primary   api.Money `json:"primary"`
	Secondary api.Money `json:"secondary"`
	Other     api.Money `json:"other"`
	Total     api.Money `json:"total"`
}

type IncomeDTO struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      api.Money `json:"amount"`
	Type        string    `json:"type,omitempty"`
	PiggyBankID string    `json:"piggyBankId,omitempty"`
}

type IncomeHandler struct {
	service IncomeService
}

func NewIncomeHandler(service IncomeService) *IncomeHandler {
	return &IncomeHandler{service}
}

func (handler *IncomeHandler) GetBase(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	base, err := handler.service.GetBase(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(baseToDTO(base)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *IncomeHandler) SetBase(w http.ResponseWriter, r *http.Request) {
	log.Debug("Updating base income")
	w.Header().Set("Content-Type", "application/json")

	var dto BaseIncomeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	base, err := handler.service.SetBase(r.Context(), ledger.BaseIncome{
		Primary:   dto.Primary.Decimal,
		Secondary: dto.Secondary.Decimal,
		Other:     dto.Other.Decimal,
	})
	if err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(baseToDTO(base)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *IncomeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	incomes, err := handler.service.GetAll(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	dtos := make([]IncomeDTO, 0, len(incomes))
	for _, in := range incomes {
		dtos = append(dtos, toDTO(in))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *IncomeHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto IncomeDTO
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

func (handler *IncomeHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto IncomeDTO
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

func (handler *IncomeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func baseToDTO(base ledger.BaseIncome) BaseIncomeDTO {
	return BaseIncomeDTO{
		Primary:   api.MoneyOf(base.Primary),
		Secondary: api.MoneyOf(base.Secondary),
		Other:     api.MoneyOf(base.Other),
		Total:     api.MoneyOf(base.Total()),
	}
}

func toDTO(in ledger.Income) IncomeDTO {
	return IncomeDTO{
		ID:          in.ID,
		Date:        in.Date,
		Description: in.Description,
		Amount:      api.MoneyOf(in.Amount),
		Type:        string(in.Kind),
		PiggyBankID: in.PiggyBankID,
	}
}

func fromDTO(dto IncomeDTO) ledger.Income {
	return ledger.Income{
		ID:          dto.ID,
		Date:        dto.Date,
		Description: dto.Description,
		Amount:      dto.Amount.Decimal,
	}
}
