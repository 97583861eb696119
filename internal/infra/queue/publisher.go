package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/varunbhx/coachdesk/internal/notify"
)

// ChangePublisher forwards store change notifications to remote view
// layers over RabbitMQ. It is a notify.Observer; publish failures are
// logged and dropped, because the in-memory mutation has already happened
// and must not be rolled back for a broken broker.
type ChangePublisher struct {
	Ch *amqp.Channel
}

func NewChangePublisher(ch *amqp.Channel) *ChangePublisher {
	return &ChangePublisher{Ch: ch}
}

func (p *ChangePublisher) EntityChanged(evt notify.ChangeEvent) {
	body, err := json.Marshal(evt)
	if err != nil {
		log.Printf("change event %s marshal failed: %v", evt.EventID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		log.Printf("change event %s publish failed: %v", evt.EventID, err)
	}
}

// MetricsStale is a no-op here: remote consumers re-pull metrics whenever
// any entity-changed event arrives, so a second message adds nothing.
func (p *ChangePublisher) MetricsStale() {}
