package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/DtronicE/menu-magic-offline/internal/domain"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishChange(ctx context.Context, event domain.ChangeEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Table),
		Value: payload,
	})
}

type KafkaConsumer struct {
	Reader *kafka.Reader
}

func NewKafkaConsumer(reader *kafka.Reader) *KafkaConsumer {
	return &KafkaConsumer{Reader: reader}
}

func (c *KafkaConsumer) ReadChange(ctx context.Context) (*domain.ChangeEvent, error) {
	message, err := c.Reader.ReadMessage(ctx)
	if err != nil {
		return nil, err
	}
	var event domain.ChangeEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return nil, fmt.Errorf("malformed change event: %w", err)
	}
	return &event, nil
}
