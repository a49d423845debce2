package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"katana_store/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// OrderPublisher emits order.created events to Kafka. A nil *OrderPublisher
// is valid and disables publishing.
type OrderPublisher struct {
	writer *kafka.Writer
	log    *logrus.Logger
}

func NewOrderPublisher(brokers, topic string, logger *logrus.Logger) *OrderPublisher {
	if brokers == "" {
		return nil
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &OrderPublisher{
		writer: writer,
		log:    logger,
	}
}

// OrderCreated publishes the order as JSON. Failures are logged, not
// returned: the order is already persisted and checkout must not fail on the
// event.
func (p *OrderPublisher) OrderCreated(ctx context.Context, order *domain.Order) {
	if p == nil {
		return
	}

	payload, err := json.Marshal(order)
	if err != nil {
		p.log.Errorf("Failed to marshal order %s for publishing: %v", order.ID.Hex(), err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-created-%s", order.ID.Hex())),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Errorf("Failed to publish order.created event for order %s: %v", order.ID.Hex(), err)
	}
}

func (p *OrderPublisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
