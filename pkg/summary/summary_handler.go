package summary

import (
	"encoding/json"
	"net/http"

	"github.com/flujofacil/flujofacil/internal/api"
	"github.com/flujofacil/flujofacil/internal/utils"
	"github.com/flujofacil/flujofacil/pkg/month"
)

type EnvelopeStatusDTO struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Budget  api.Money `json:"budget"`
	Spent   api.Money `json:"spent"`
	Tier    string    `json:"tier"`
	Percent float64   `json:"percent"`
}

type PiggyBankStatusDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	GoalAmount    api.Money `json:"goalAmount"`
	Balance       api.Money `json:"currentBalance"`
	ProgressRatio float64   `json:"progressRatio"`
}

type SummaryDTO struct {
	Month                string               `json:"month"`
	TotalIncome          api.Money            `json:"totalIncome"`
	TotalFixedExpense    api.Money            `json:"totalFixedExpense"`
	TotalVariableExpense api.Money            `json:"totalVariableExpense"`
	TotalExpense         api.Money            `json:"totalExpense"`
	Balance              api.Money            `json:"balance"`
	Positive             bool                 `json:"positive"`
	Envelopes            []EnvelopeStatusDTO  `json:"envelopes"`
	PiggyBanks           []PiggyBankStatusDTO `json:"piggyBanks"`
	TotalSavings         api.Money            `json:"totalSavings"`
}

type SummaryHandler struct {
	service SummaryService
	clock   utils.Clock
}

func NewSummaryHandler(service SummaryService, clock utils.Clock) *SummaryHandler {
	return &SummaryHandler{service: service, clock: clock}
}

// Get serves the derived month view. Without a month query parameter the
// clock's current month is used.
func (handler *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ym := month.Of(handler.clock.Now())
	if key := r.URL.Query().Get("month"); key != "" {
		parsed, ok := month.FromKey(key)
		if !ok {
			http.Error(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
			return
		}
		ym = parsed
	}

	result, err := handler.service.MonthlySummary(r.Context(), ym)
	if err != nil {
		api.Error(w, err)
		return
	}

	dto := SummaryDTO{
		Month:                result.Month.Key(),
		TotalIncome:          api.MoneyOf(result.TotalIncome),
		TotalFixedExpense:    api.MoneyOf(result.TotalFixedExpense),
		TotalVariableExpense: api.MoneyOf(result.TotalVariableExpense),
		TotalExpense:         api.MoneyOf(result.TotalExpense),
		Balance:              api.MoneyOf(result.Balance),
		Positive:             result.Positive,
		Envelopes:            make([]EnvelopeStatusDTO, 0, len(result.Envelopes)),
		PiggyBanks:           make([]PiggyBankStatusDTO, 0, len(result.PiggyBanks)),
		TotalSavings:         api.MoneyOf(result.TotalSavings),
	}
	for _, env := range result.Envelopes {
		dto.Envelopes = append(dto.Envelopes, EnvelopeStatusDTO{
			ID:      env.ID,
			Name:    env.Name,
			Budget:  api.MoneyOf(env.Budget),
			Spent:   api.MoneyOf(env.Spent),
			Tier:    string(env.Tier),
			Percent: env.Percent,
		})
	}
	for _, bank := range result.PiggyBanks {
		dto.PiggyBanks = append(dto.PiggyBanks, PiggyBankStatusDTO{
			ID:            bank.ID,
			Name:          bank.Name,
			GoalAmount:    api.MoneyOf(bank.GoalAmount),
			Balance:       api.MoneyOf(bank.Balance),
			ProgressRatio: bank.ProgressRatio,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
