package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusCompleted = "completed"
	PaymentStatusPending   = "pending"
	PaymentStatusFailed    = "failed"
)

func ValidPaymentStatus(s string) bool {
	return s == PaymentStatusCompleted || s == PaymentStatusPending || s == PaymentStatusFailed
}

var PaymentMethods = []string{
	"Cash",
	"Bank Transfer",
	"UPI",
	"Credit Card",
	"Razorpay",
	"Stripe",
}

func ValidPaymentMethod(m string) bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

type Payment struct {
	ID        int64           `json:"id"`
	ClientID  int64           `json:"client_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Date      string          `json:"date"`
	Status    string          `json:"status"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
