package fixed

import (
	"encoding/json"
	"net/http"

	"github.com/flujofacil/flujofacil/internal/api"
	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/gorilla/mux"
)

type FixedExpenseDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	MonthlyAmount api.Money `json:"monthlyAmount"`
}

type CategoryReportLineDTO struct {
	Category string    `json:"category"`
	Total    api.Money `json:"total"`
	Share    float64   `json:"share"`
}

type FixedExpenseHandler struct {
	service FixedExpenseService
}

func NewFixedExpenseHandler(service FixedExpenseService) *FixedExpenseHandler {
	return &FixedExpenseHandler{service}
}

func (handler *FixedExpenseHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	expenses, err := handler.service.GetAll(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	dtos := make([]FixedExpenseDTO, 0, len(expenses))
	for _, f := range expenses {
		dtos = append(dtos, toDTO(f))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *FixedExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	expense, ok := decodeBody(w, r, "")
	if !ok {
		return
	}
	created, err := handler.service.Create(r.Context(), expense)
	if err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *FixedExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	expense, ok := decodeBody(w, r, mux.Vars(r)["id"])
	if !ok {
		return
	}
	updated, err := handler.service.Update(r.Context(), expense)
	if err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *FixedExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *FixedExpenseHandler) Report(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	lines, err := handler.service.Report(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	dtos := make([]CategoryReportLineDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, CategoryReportLineDTO{
			Category: string(line.Category),
			Total:    api.MoneyOf(line.Total),
			Share:    line.Share,
		})
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, id string) (ledger.FixedExpense, bool) {
	var dto FixedExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return ledger.FixedExpense{}, false
	}
	category, ok := ledger.ParseFixedCategory(dto.Category)
	if !ok {
		http.Error(w, "unknown fixed expense category", http.StatusBadRequest)
		return ledger.FixedExpense{}, false
	}
	if id != "" {
		dto.ID = id
	}
	return ledger.FixedExpense{
		ID:            dto.ID,
		Name:          dto.Name,
		Category:      category,
		MonthlyAmount: dto.MonthlyAmount.Decimal,
	}, true
}

func toDTO(f ledger.FixedExpense) FixedExpenseDTO {
	return FixedExpenseDTO{
		ID:            f.ID,
		Name:          f.Name,
		Category:      string(f.Category),
		MonthlyAmount: api.MoneyOf(f.MonthlyAmount),
	}
}
