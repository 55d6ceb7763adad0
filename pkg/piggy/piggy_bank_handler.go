package piggy

import (
	"encoding/json"
	"net/http"

	"github.com/flujofacil/flujofacil/internal/api"
	"github.com/flujofacil/flujofacil/pkg/ledger"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type PiggyBankDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	GoalAmount    api.Money `json:"goalAmount"`
	Balance       api.Money `json:"currentBalance"`
	ProgressRatio float64   `json:"progressRatio"`
}

type PiggyBankHandler struct {
	service PiggyBankService
}

func NewPiggyBankHandler(service PiggyBankService) *PiggyBankHandler {
	return &PiggyBankHandler{service}
}

func (handler *PiggyBankHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	banks, err := handler.service.GetAll(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	dtos := make([]PiggyBankDTO, 0, len(banks))
	for _, bank := range banks {
		dtos = append(dtos, toDTO(bank))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *PiggyBankHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new piggy bank")
	w.Header().Set("Content-Type", "application/json")

	var dto struct {
		Name           string    `json:"name"`
		GoalAmount     api.Money `json:"goalAmount"`
		InitialDeposit api.Money `json:"initialDeposit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bank, err := handler.service.Create(r.Context(), dto.Name, dto.GoalAmount.Decimal, dto.InitialDeposit.Decimal)
	if err != nil {
		api.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(bank)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *PiggyBankHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto struct {
		Amount api.Money `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bank, err := handler.service.Deposit(r.Context(), mux.Vars(r)["id"], dto.Amount.Decimal)
	if err != nil {
		api.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toDTO(bank)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *PiggyBankHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto struct {
		Amount         api.Money `json:"amount"`
		ReturnToIncome bool      `json:"returnToIncome"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bank, err := handler.service.Withdraw(r.Context(), mux.Vars(r)["id"], dto.Amount.Decimal, dto.ReturnToIncome)
	if err != nil {
		api.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toDTO(bank)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *PiggyBankHandler) Break(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.Break(r.Context(), mux.Vars(r)["id"]); err != nil {
		api.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toDTO(bank ledger.PiggyBank) PiggyBankDTO {
	return PiggyBankDTO{
		ID:            bank.ID,
		Name:          bank.Name,
		GoalAmount:    api.MoneyOf(bank.GoalAmount),
		Balance:       api.MoneyOf(bank.Balance),
		ProgressRatio: progressRatio(bank),
	}
}

// progressRatio reports how far the balance is towards the goal, capped at 1.
// A bank without a goal has no meaningful progress and reports 0.
func progressRatio(bank ledger.PiggyBank) float64 {
	if !bank.GoalAmount.IsPositive() {
		return 0
	}
	ratio, _ := bank.Balance.Div(bank.GoalAmount).Float64()
	if ratio > 1 {
		return 1
	}
	return ratio
}
