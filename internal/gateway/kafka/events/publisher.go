package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"orderbot/internal/converters"
	"orderbot/internal/entities"
)

const (
	headerEventType        = "event_type"
	eventOrderLineRecorded = "order.line.recorded"
)

type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishOrderLineRecorded ключ сообщения это имя датированного листа,
// поэтому события одного листа попадают в одну партицию по порядку.
func (p *Publisher) PublishOrderLineRecorded(_ context.Context, line entities.OrderLine) error {
	payload, err := json.Marshal(converters.OrderLineToDTO(line))
	if err != nil {
		return fmt.Errorf("marshal order line %d: %w", line.ID, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(line.SheetName),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(headerEventType), Value: []byte(eventOrderLineRecorded)},
		},
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		EventsPublishedTotal.WithLabelValues(p.topic, "error").Inc()
		return fmt.Errorf("publish order line %d: %w", line.ID, err)
	}

	EventsPublishedTotal.WithLabelValues(p.topic, "ok").Inc()
	return nil
}
