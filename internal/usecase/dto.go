package usecase

import "github.com/shopspring/decimal"

type CreateClientInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Age       int    `json:"age,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Program   string `json:"program,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type CreateLeadInput struct {
	Name    string          `json:"name"`
	Email   string          `json:"email,omitempty"`
	Phone   string          `json:"phone,omitempty"`
	Source  string          `json:"source"`
	Program string          `json:"program,omitempty"`
	Value   decimal.Decimal `json:"value"`
	Notes   string          `json:"notes,omitempty"`
}

type CreatePaymentInput struct {
	ClientID int64           `json:"client_id"`
	Amount   decimal.Decimal `json:"amount"`
	Method   string          `json:"method"`
	Date     string          `json:"date"`
	Status   string          `json:"status"`
	Notes    string          `json:"notes,omitempty"`
}

type CreateSessionInput struct {
	ClientID int64  `json:"client_id"`
	Type     string `json:"type"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration_minutes"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// MoveLeadOutput distinguishes success-with-change from a no-op move so
// observers do not emit spurious change notifications.
type MoveLeadOutput struct {
	LeadID  int64  `json:"lead_id"`
	Changed bool   `json:"changed"`
	From    string `json:"from,omitempty"`
	Stage   string `json:"stage"`
}
