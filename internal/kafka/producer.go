package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/tmfowler/investment-tracker/internal/models"
)

// Producer handles publishing investment events to Kafka
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer creates a new Kafka producer
func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

// PublishInvestmentCreated publishes an investment created event
func (p *Producer) PublishInvestmentCreated(ctx context.Context, inv *models.Investment) error {
	event := models.InvestmentEvent{
		EventType:  models.EventInvestmentCreated,
		Investment: inv,
		ID:         inv.ID,
		Timestamp:  time.Now(),
	}
	return p.publish(ctx, inv.ID, event)
}

// PublishInvestmentUpdated publishes an investment updated event
func (p *Producer) PublishInvestmentUpdated(ctx context.Context, inv *models.Investment) error {
	event := models.InvestmentEvent{
		EventType:  models.EventInvestmentUpdated,
		Investment: inv,
		ID:         inv.ID,
		Timestamp:  time.Now(),
	}
	return p.publish(ctx, inv.ID, event)
}

// PublishInvestmentDeleted publishes an investment deleted event
func (p *Producer) PublishInvestmentDeleted(ctx context.Context, id int) error {
	event := models.InvestmentEvent{
		EventType: models.EventInvestmentDeleted,
		ID:        id,
		Timestamp: time.Now(),
	}
	return p.publish(ctx, id, event)
}

func (p *Producer) publish(ctx context.Context, id int, event models.InvestmentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.Itoa(id)),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
