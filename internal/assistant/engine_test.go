package assistant

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/varunbhx/coachdesk/internal/entity"
	"github.com/varunbhx/coachdesk/internal/store"
	"github.com/varunbhx/coachdesk/internal/usecase"
)

func newEngine(mem *store.Memory) *Engine {
	return NewEngine(usecase.NewComputeMetricsUseCase(mem))
}

func TestClassifyBucketPriority(t *testing.T) {
	cases := []struct {
		query string
		topic Topic
	}{
		{"any EMI due this week?", TopicPayments},
		{"show me pending payments", TopicPayments},
		{"how many clients do I have", TopicClients},
		{"any customer updates?", TopicClients},
		{"upcoming sessions today", TopicSessions},
		{"next appointment please", TopicSessions},
		{"how much revenue do I have", TopicRevenue},
		{"what's my income this month", TopicRevenue},
		{"active leads in the pipeline", TopicLeads},
		{"sales update", TopicLeads},
		{"hello there", TopicGeneral},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.topic, Classify(tc.query), "query %q", tc.query)
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// "payment" outranks "client" even when both keywords appear.
	assert.Equal(t, TopicPayments, Classify("did my client send the payment?"))
	// "client" outranks "session".
	assert.Equal(t, TopicClients, Classify("which client booked a session?"))
}

func TestAnswerRevenueZeroVariant(t *testing.T) {
	e := newEngine(store.NewMemory())

	reply := e.Answer(context.Background(), "how much revenue do I have")

	assert.Equal(t, TopicRevenue, reply.Topic)
	assert.Contains(t, reply.Text, "Time to record your first payment")
}

func TestAnswerRevenueFormatsThousands(t *testing.T) {
	mem := store.NewMemory()
	mem.AddClient(entity.Client{Name: "Asha", Email: "asha@example.com", Phone: "9876543210"})
	mem.AddPayment(entity.Payment{ClientID: 1, Amount: decimal.NewFromInt(1000), Method: "UPI", Status: entity.PaymentStatusCompleted})

	e := newEngine(mem)
	reply := e.Answer(context.Background(), "how much revenue do I have")

	assert.Equal(t, TopicRevenue, reply.Topic)
	assert.Contains(t, reply.Text, "1,000")
	assert.NotContains(t, reply.Text, "first payment")
}

func TestAnswerReflectsFreshMetrics(t *testing.T) {
	mem := store.NewMemory()
	e := newEngine(mem)
	ctx := context.Background()

	before := e.Answer(ctx, "pending payments?")
	assert.Contains(t, before.Text, "don't have any pending")

	mem.AddPayment(entity.Payment{ClientID: 1, Amount: decimal.NewFromInt(300), Method: "Cash", Status: entity.PaymentStatusPending})

	after := e.Answer(ctx, "pending payments?")
	assert.Contains(t, after.Text, "1 pending payment")
}

func TestAnswerFallbackRoundRobinIsDeterministic(t *testing.T) {
	e := newEngine(store.NewMemory())
	ctx := context.Background()

	var texts []string
	for i := 0; i < len(fallbackPrompts)+1; i++ {
		texts = append(texts, e.Answer(ctx, "xyzzy").Text)
	}

	for i, want := range fallbackPrompts {
		assert.Equal(t, want, texts[i])
	}
	assert.Equal(t, fallbackPrompts[0], texts[len(fallbackPrompts)], "selector wraps around")
}

func TestAnswerFallbackWithStubbedSelector(t *testing.T) {
	e := newEngine(store.NewMemory()).WithSelector(func() int { return 1 })

	reply := e.Answer(context.Background(), "xyzzy")
	assert.Equal(t, TopicGeneral, reply.Topic)
	assert.Equal(t, fallbackPrompts[1], reply.Text)
}

func TestAskAsyncDeliversEveryReply(t *testing.T) {
	mem := store.NewMemory()
	mem.AddClient(entity.Client{Name: "Asha", Email: "asha@example.com", Phone: "9876543210"})
	e := newEngine(mem)
	ctx := context.Background()

	var mu sync.Mutex
	var replies []Reply
	var wg sync.WaitGroup
	deliver := func(r Reply) {
		mu.Lock()
		replies = append(replies, r)
		mu.Unlock()
		wg.Done()
	}

	// A second query submitted before the first reply lands must not
	// corrupt anything; both replies arrive, in whatever completion order.
	wg.Add(2)
	e.AskAsync(ctx, "how many clients do I have", deliver)
	e.AskAsync(ctx, "any leads?", deliver)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("async replies were not delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, replies, 2)
	topics := map[Topic]bool{}
	for _, r := range replies {
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Text)
		topics[r.Topic] = true
	}
	assert.True(t, topics[TopicClients])
	assert.True(t, topics[TopicLeads])
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹1,000.00", FormatINR(decimal.NewFromInt(1000)))
	assert.Equal(t, "₹0.00", FormatINR(decimal.Zero))
	assert.Equal(t, "₹2,500.50", FormatINR(decimal.NewFromFloat(2500.5)))
}
