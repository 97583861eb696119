package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/varunbhx/coachdesk/internal/entity"
	"github.com/varunbhx/coachdesk/internal/store"
)

// Metrics are the dashboard rollups. They are a pure function of store
// contents: nothing is cached, every call walks the live collections once.
type Metrics struct {
	TotalClients    int                  `json:"total_clients"`
	ActiveSessions  int                  `json:"active_sessions"`
	PendingPayments int                  `json:"pending_payments"`
	ActiveLeads     int                  `json:"active_leads"`
	TotalRevenue    decimal.Decimal      `json:"total_revenue"`
	PipelineValue   decimal.Decimal      `json:"pipeline_value"`
	LeadsByStage    map[entity.Stage]int `json:"leads_by_stage"`
}

type ComputeMetricsUseCase struct {
	Store *store.Memory
}

func NewComputeMetricsUseCase(s *store.Memory) *ComputeMetricsUseCase {
	return &ComputeMetricsUseCase{Store: s}
}

func (uc *ComputeMetricsUseCase) Execute(ctx context.Context) Metrics {
	m := Metrics{
		TotalRevenue:  decimal.Zero,
		PipelineValue: decimal.Zero,
		LeadsByStage:  make(map[entity.Stage]int),
	}

	m.TotalClients = len(uc.Store.Clients())

	for _, s := range uc.Store.Sessions() {
		if s.Status == entity.SessionStatusScheduled {
			m.ActiveSessions++
		}
	}

	for _, p := range uc.Store.Payments() {
		switch p.Status {
		case entity.PaymentStatusPending:
			m.PendingPayments++
		case entity.PaymentStatusCompleted:
			m.TotalRevenue = m.TotalRevenue.Add(p.Amount)
		}
	}

	for _, l := range uc.Store.Leads() {
		m.LeadsByStage[l.Stage]++
		if l.Active() {
			m.ActiveLeads++
			m.PipelineValue = m.PipelineValue.Add(l.Value)
		}
	}

	return m
}
