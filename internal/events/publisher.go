// Package events publishes report lifecycle events to Kafka. The publisher
// is an optional side-channel: when no brokers are configured a no-op
// implementation is used, and publish failures are logged by callers, never
// fatal to report generation.
package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// ReportGenerated is emitted after a report row has been persisted.
type ReportGenerated struct {
	ReportID    uuid.UUID `json:"report_id"`
	StudentID   uuid.UUID `json:"student_id"`
	ISOWeek     int       `json:"iso_week"`
	Year        int       `json:"year"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Publisher is the event side-channel boundary.
type Publisher interface {
	PublishReportGenerated(ctx context.Context, event ReportGenerated) error
	Close() error
}

// NewKafkaPublisher creates a Kafka-backed publisher, or a no-op one when
// brokers is empty.
func NewKafkaPublisher(brokers, topic string) Publisher {
	if strings.TrimSpace(brokers) == "" {
		return noopPublisher{}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
	return &kafkaPublisher{writer: writer}
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func (p *kafkaPublisher) PublishReportGenerated(ctx context.Context, event ReportGenerated) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.StudentID.String()),
		Value: payload,
	})
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type noopPublisher struct{}

func (noopPublisher) PublishReportGenerated(context.Context, ReportGenerated) error { return nil }
func (noopPublisher) Close() error                                                  { return nil }
