package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Rhymond/go-money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/varunbhx/coachdesk/internal/usecase"
)

// Topic is the bucket a query classified into.
type Topic string

const (
	TopicPayments Topic = "payments"
	TopicClients  Topic = "clients"
	TopicSessions Topic = "sessions"
	TopicRevenue  Topic = "revenue"
	TopicLeads    Topic = "leads"
	TopicGeneral  Topic = "general"
)

type Reply struct {
	ID    string `json:"id"`
	Query string `json:"query"`
	Topic Topic  `json:"topic"`
	Text  string `json:"text"`
}

var fallbackPrompts = []string{
	"I'm here to help you manage your CRM. You can ask me about clients, payments, sessions, or leads.",
	"Try asking me things like 'Show me pending payments' or 'How many clients do I have?'",
	"I can help you understand your business metrics and remind you of important tasks.",
	"What would you like to know about your coaching business today?",
}

// Engine answers free-text questions by keyword classification over the
// current rollup metrics. Buckets are tested in a fixed priority order and
// the first match wins; numbers always come from a fresh metrics pass.
type Engine struct {
	Metrics *usecase.ComputeMetricsUseCase

	mu       sync.Mutex
	nextIdx  int
	selector func() int // picks a fallback prompt; injectable for tests
}

func NewEngine(metrics *usecase.ComputeMetricsUseCase) *Engine {
	e := &Engine{Metrics: metrics}
	e.selector = e.roundRobin
	return e
}

// WithSelector overrides the fallback prompt selector. Used in tests.
func (e *Engine) WithSelector(sel func() int) *Engine {
	e.selector = sel
	return e
}

func (e *Engine) roundRobin() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	i := e.nextIdx
	e.nextIdx = (e.nextIdx + 1) % len(fallbackPrompts)
	return i
}

func (e *Engine) Answer(ctx context.Context, query string) Reply {
	topic := Classify(query)
	m := e.Metrics.Execute(ctx)

	reply := Reply{
		ID:    uuid.New().String(),
		Query: query,
		Topic: topic,
	}

	switch topic {
	case TopicPayments:
		if m.PendingPayments == 0 {
			reply.Text = "You don't have any pending EMI payments at the moment. Great job staying on top of your finances!"
		} else {
			reply.Text = fmt.Sprintf("You have %d pending payment(s). Would you like me to show you the details or help set up reminders?", m.PendingPayments)
		}
	case TopicClients:
		if m.TotalClients == 0 {
			reply.Text = "You currently have 0 clients in your system. Let's add your first client to get started!"
		} else {
			reply.Text = fmt.Sprintf("You currently have %d clients in your system. Your business is growing!", m.TotalClients)
		}
	case TopicSessions:
		if m.ActiveSessions == 0 {
			reply.Text = "You have 0 upcoming sessions scheduled. Ready to schedule some new sessions?"
		} else {
			reply.Text = fmt.Sprintf("You have %d upcoming sessions scheduled. Keep up the great coaching work!", m.ActiveSessions)
		}
	case TopicRevenue:
		if m.TotalRevenue.IsZero() {
			reply.Text = "Your total completed payments amount to " + FormatINR(decimal.Zero) + ". Time to record your first payment!"
		} else {
			reply.Text = "Your total completed payments amount to " + FormatINR(m.TotalRevenue) + ". Great work building your business!"
		}
	case TopicLeads:
		if m.ActiveLeads == 0 {
			reply.Text = "You have 0 active leads in your pipeline. Let's add some new leads to grow your business!"
		} else {
			reply.Text = fmt.Sprintf("You have %d active leads in your pipeline. Keep nurturing those leads!", m.ActiveLeads)
		}
	default:
		reply.Text = fallbackPrompts[e.selector()%len(fallbackPrompts)]
	}

	return reply
}

// AskAsync computes the answer off the caller's thread and hands it to
// deliver when done. There is no cancellation and no ordering guarantee
// between concurrent asks: replies arrive in completion order.
func (e *Engine) AskAsync(ctx context.Context, query string, deliver func(Reply)) {
	go func() {
		deliver(e.Answer(ctx, query))
	}()
}

// Classify maps a query to its topic bucket. Order matters: the buckets
// are tested payments, clients, sessions, revenue, leads, and the first
// hit wins.
func Classify(query string) Topic {
	q := strings.ToLower(query)

	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(q, w) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("emi", "payment", "due"):
		return TopicPayments
	case contains("client", "customer"):
		return TopicClients
	case contains("session", "appointment"):
		return TopicSessions
	case contains("revenue", "income", "money"):
		return TopicRevenue
	case contains("lead", "sales"):
		return TopicLeads
	}
	return TopicGeneral
}

// FormatINR renders an amount the way the dashboard does: rupee symbol and
// thousands grouping, e.g. ₹1,000.00.
func FormatINR(amount decimal.Decimal) string {
	minor := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(minor, money.INR).Display()
}
