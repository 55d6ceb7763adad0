package expense

import (
	"encoding/json"
	"net/http"

	"github.com/flujofacil/flujofacil/internal/api"
	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/gorilla/mux"
)

type ExpenseDTO struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      api.Money `json:"amount"`
	Type        string    `json:"type,omitempty"`
	PiggyBankID string    `json:"piggyBankId,omitempty"`
}

type ExpenseHandler struct {
	service ExpenseService
}

func NewExpenseHandler(service ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service}
}

func (handler *ExpenseHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	expenses, err := handler.service.GetAll(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		dtos = append(dtos, toDTO(e))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto ExpenseDTO
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

func (handler *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto ExpenseDTO
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

func (handler *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *ExpenseHandler) Categories(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	categories, err := handler.service.Categories(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(categories); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toDTO(e ledger.Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:          e.ID,
		Date:        e.Date,
		Category:    e.Category,
		Description: e.Description,
		Amount:      api.MoneyOf(e.Amount),
		Type:        string(e.Kind),
		PiggyBankID: e.PiggyBankID,
	}
}

func fromDTO(dto ExpenseDTO) ledger.Expense {
	return ledger.Expense{
		ID:          dto.ID,
		Date:        dto.Date,
		Category:    dto.Category,
		Description: dto.Description,
		Amount:      dto.Amount.Decimal,
	}
}
