package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinetick/internal/shared/config"

	"github.com/IBM/sarama"
)

// Publisher is the contract the ticket service publishes through.
type Publisher interface {
	PublishTicketEvent(ctx context.Context, event *TicketEvent) error
	Close() error
}

// KafkaPublisher publishes ticket events to Kafka.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher creates a new Kafka ticket event publisher.
func NewKafkaPublisher(cfg config.KafkaConfig) (*KafkaPublisher, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	// Hash partitioner keeps one projection's events on one partition
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("📤 Kafka ticket event publisher created successfully")
	return &KafkaPublisher{
		producer: producer,
		topic:    cfg.TicketTopic,
	}, nil
}

// PublishTicketEvent publishes a single ticket event to Kafka.
func (p *KafkaPublisher) PublishTicketEvent(ctx context.Context, event *TicketEvent) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal ticket event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.GetPartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Timestamp: event.CreatedAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
			{Key: []byte("event_id"), Value: []byte(event.EventID.String())},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send ticket event to Kafka: %w", err)
	}

	log.Printf("📤 Ticket event published - Topic: %s, Partition: %d, Offset: %d, Type: %s",
		p.topic, partition, offset, event.Type)

	return nil
}

// Close shuts down the underlying producer.
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher is used when Kafka is disabled. Events are dropped.
type NoopPublisher struct{}

func (NoopPublisher) PublishTicketEvent(ctx context.Context, event *TicketEvent) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
