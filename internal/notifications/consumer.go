package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"cinetick/internal/shared/config"

	"github.com/IBM/sarama"
)

// Consumer drains the ticket topic and dispatches confirmations. Delivery
// is at-least-once: handlers must tolerate duplicates.
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler EventHandler
}

// EventHandler processes one decoded ticket event.
type EventHandler func(ctx context.Context, event *TicketEvent) error

// NewConsumer creates a consumer group member for the ticket topic.
func NewConsumer(cfg config.KafkaConfig, handler EventHandler) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategyRoundRobin(),
	}
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}

	if handler == nil {
		handler = LogTicketEvent
	}

	return &Consumer{
		group:   group,
		topic:   cfg.TicketTopic,
		handler: handler,
	}, nil
}

// Start consumes until the context is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	log.Printf("📥 Ticket event consumer starting on topic %s", c.topic)
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, &groupHandler{handler: c.handler}); err != nil {
			return fmt.Errorf("consumer group session failed: %w", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close leaves the consumer group.
func (c *Consumer) Close() error {
	return c.group.Close()
}

// LogTicketEvent is the default handler: it records the event and moves on.
func LogTicketEvent(ctx context.Context, event *TicketEvent) error {
	log.Printf("🎟️  Ticket event %s: %d ticket(s) for projection %s (user %s)",
		event.Type, event.Quantity, event.MovieProjectionID, event.UserID)
	return nil
}

type groupHandler struct {
	handler EventHandler
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		var event TicketEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			// malformed messages are acknowledged, not retried forever
			log.Printf("dropping malformed ticket event at offset %d: %v", message.Offset, err)
			session.MarkMessage(message, "")
			continue
		}

		if err := h.handler(session.Context(), &event); err != nil {
			log.Printf("ticket event handler failed for %s: %v", event.EventID, err)
		}
		session.MarkMessage(message, "")
	}
	return nil
}
