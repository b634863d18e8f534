package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/lljaworski/invoicing/internal/entity"
	"github.com/lljaworski/invoicing/pkg/metrics"
)

const headerEventType = "event_type"

type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

// NewProducer creates an async writer for invoice events. Delivery results are
// only visible in the logs and the events_published_total metric.
func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	p := &Producer{
		l:     l,
		topic: topic,
	}

	p.w = &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Completion:             p.completion,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return p
}

// SendInvoiceEvent is keyed by invoice id so events of one invoice stay ordered.
func (p *Producer) SendInvoiceEvent(ctx context.Context, event entity.InvoiceEvent) {
	m, err := invoiceEventMessage(p.topic, event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		metrics.EventsPublished.WithLabelValues(string(event.Type), "error").Inc()

		return
	}

	err = p.w.WriteMessages(ctx, m)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err), "invoice_id", event.InvoiceID)
		metrics.EventsPublished.WithLabelValues(string(event.Type), "error").Inc()
	}
}

func (p *Producer) completion(messages []kafka.Message, err error) {
	result := "ok"
	if err != nil {
		result = "error"
		p.l.Error(fmt.Sprintf("deliver kafka messages: %s", err), "count", len(messages))
	}

	for _, m := range messages {
		metrics.EventsPublished.WithLabelValues(eventType(m), result).Inc()
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

func invoiceEventMessage(topic string, event entity.InvoiceEvent) (kafka.Message, error) {
	b, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Topic: topic,
		Key:   []byte(event.InvoiceID.String()),
		Value: b,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(event.Type)},
		},
	}, nil
}

func eventType(m kafka.Message) string {
	for _, h := range m.Headers {
		if h.Key == headerEventType {
			return string(h.Value)
		}
	}

	return "unknown"
}
