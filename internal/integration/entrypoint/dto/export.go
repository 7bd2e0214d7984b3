// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/vault-finance/backend/internal/application/usecase/export"
)

// ExportResponse carries every collection the user owns in one document.
type ExportResponse struct {
	ExportedAt    time.Time                 `json:"exported_at"`
	Transactions  []TransactionResponse     `json:"transactions"`
	Goals         []GoalResponse            `json:"goals"`
	Accounts      []SavingsAccountResponse  `json:"savings_accounts"`
	Debts         []DebtResponse            `json:"debts"`
	Subscriptions []SubscriptionResponse    `json:"subscriptions"`
	Policies      []InsurancePolicyResponse `json:"insurance_policies"`
	TaxRecords    []TaxRecordResponse       `json:"tax_records"`
	BudgetPlans   []BudgetPlanResponse      `json:"budget_plans"`
}

// ToExportResponse converts the export output to a response DTO.
func ToExportResponse(out *export.ExportDataOutput) ExportResponse {
	response := ExportResponse{
		ExportedAt:    out.ExportedAt,
		Transactions:  make([]TransactionResponse, len(out.Transactions)),
		Goals:         make([]GoalResponse, len(out.Goals)),
		Accounts:      make([]SavingsAccountResponse, len(out.Accounts)),
		Debts:         make([]DebtResponse, len(out.Debts)),
		Subscriptions: make([]SubscriptionResponse, len(out.Subscriptions)),
		Policies:      make([]InsurancePolicyResponse, len(out.Policies)),
		TaxRecords:    make([]TaxRecordResponse, len(out.TaxRecords)),
		BudgetPlans:   make([]BudgetPlanResponse, len(out.BudgetPlans)),
	}
	for i, t := range out.Transactions {
		response.Transactions[i] = ToTransactionResponse(t)
	}
	for i, g := range out.Goals {
		response.Goals[i] = GoalResponse{
			ID:            g.ID.String(),
			UserID:        g.UserID.String(),
			Title:         g.Title,
			TargetAmount:  g.TargetAmount.String(),
			CurrentAmount: g.CurrentAmount.String(),
			Progress:      g.ClampedProgress(),
			Status:        string(g.Status()),
			CreatedAt:     g.CreatedAt,
			UpdatedAt:     g.UpdatedAt,
		}
		if g.TargetDate != nil {
			d := g.TargetDate.Format("2006-01-02")
			response.Goals[i].TargetDate = &d
		}
	}
	for i, a := range out.Accounts {
		response.Accounts[i] = ToSavingsAccountResponse(a)
	}
	for i, d := range out.Debts {
		response.Debts[i] = ToDebtResponse(d)
	}
	for i, s := range out.Subscriptions {
		response.Subscriptions[i] = ToSubscriptionResponse(s)
	}
	for i, p := range out.Policies {
		response.Policies[i] = ToInsurancePolicyResponse(p)
	}
	for i, r := range out.TaxRecords {
		response.TaxRecords[i] = ToTaxRecordResponse(r)
	}
	for i, p := range out.BudgetPlans {
		response.BudgetPlans[i] = ToBudgetPlanResponse(p, p.SurplusDeficit(), p.Outcome())
	}
	return response
}
