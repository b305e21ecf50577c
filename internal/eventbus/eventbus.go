// Package eventbus publishes scan lifecycle events, adapted from
// qlp-hq-QLP's internal/events KafkaEventManager. Unlike the teacher's
// manager, this bus only publishes: it is an observability hook external
// systems (a JIRA poster, a notifier) can subscribe to out of process, and
// publishing is always best-effort and never blocks or fails a scan.
package eventbus

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/hardgate/scanengine/internal/logger"
)

// EventType is the kind of scan lifecycle event being published.
type EventType string

const (
	EventScanSubmitted EventType = "scan.submitted"
	EventScanCompleted EventType = "scan.completed"
	EventScanFailed    EventType = "scan.failed"
)

// Event is the payload published for every scan lifecycle transition.
type Event struct {
	Type      EventType `json:"type"`
	ScanID    string    `json:"scan_id"`
	Timestamp time.Time `json:"timestamp"`
	Score     float64   `json:"score,omitempty"`
	Message   string    `json:"message,omitempty"`
}

const defaultTopic = "hardgate-scan-events"

// Bus publishes scan lifecycle events.
type Bus interface {
	Publish(ctx context.Context, event Event)
}

// NoOp discards every event; used when no Kafka brokers are configured.
type NoOp struct{}

func (NoOp) Publish(context.Context, Event) {}

// Kafka publishes events to a Kafka topic via segmentio/kafka-go.
type Kafka struct {
	writer *kafkago.Writer
	log    *zap.Logger
}

func NewKafka(brokers []string) *Kafka {
	return &Kafka{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(brokers...),
			Topic:    defaultTopic,
			Balancer: &kafkago.LeastBytes{},
		},
		log: logger.WithComponent("eventbus"),
	}
}

// Publish writes event to Kafka. Failures are logged, never returned or
// retried: the scan that triggered the event has already completed or
// failed by the time this is called, and the event bus must not become a
// reason a scan result is lost.
func (k *Kafka) Publish(ctx context.Context, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		k.log.Warn("failed to marshal scan event", zap.Error(err), zap.String("scan_id", event.ScanID))
		return
	}

	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := k.writer.WriteMessages(cctx, kafkago.Message{
		Key:   []byte(event.ScanID),
		Value: data,
	}); err != nil {
		k.log.Warn("failed to publish scan event", zap.Error(err), zap.String("scan_id", event.ScanID))
		return
	}
	k.log.Debug("published scan event", zap.String("type", string(event.Type)), zap.String("scan_id", event.ScanID))
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
