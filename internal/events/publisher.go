// Package events publishes customer lifecycle events to Kafka so
// downstream consumers (reporting, CRM sync) can react to changes.
// Publishing is best-effort: a failed publish is logged, never
// surfaced to the client.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	TypeCustomerCreated = "customer.created"
	TypeCustomerDeleted = "customer.deleted"
)

type Event struct {
	Type       string    `json:"type"`
	CustomerID int64     `json:"customerId"`
	At         time.Time `json:"at"`
}

type Kafka struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

func NewKafka(brokers []string, topic string, logger *zap.Logger) *Kafka {
	return &Kafka{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		},
		logger: logger,
	}
}

func (k *Kafka) CustomerCreated(ctx context.Context, id int64) error {
	return k.publish(ctx, TypeCustomerCreated, id)
}

func (k *Kafka) CustomerDeleted(ctx context.Context, id int64) error {
	return k.publish(ctx, TypeCustomerDeleted, id)
}

func (k *Kafka) publish(ctx context.Context, typ string, id int64) error {
	payload, err := json.Marshal(Event{Type: typ, CustomerID: id, At: time.Now().UTC()})
	if err != nil {
		return err
	}
	// Key by customer id so events for one customer stay ordered
	// within a partition.
	err = k.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(strconv.FormatInt(id, 10)),
		Value: payload,
	})
	if err != nil {
		k.logger.Warn("publish event",
			zap.String("type", typ),
			zap.Int64("customer_id", id),
			zap.Error(err),
		)
	}
	return err
}

func (k *Kafka) Close() error { return k.writer.Close() }

// Noop is used when no brokers are configured.
type Noop struct{}

func (Noop) CustomerCreated(context.Context, int64) error { return nil }
func (Noop) CustomerDeleted(context.Context, int64) error { return nil }
