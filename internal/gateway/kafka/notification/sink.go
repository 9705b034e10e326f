package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"market/pkg/logger"
)

const source = "order-status-notifier"

// Sink публикует пользовательские уведомления в kafka. Ключ сообщения - identity,
// чтобы уведомления одного профиля шли в одну партицию по порядку.
type Sink struct {
	log        handlerLogger
	producer   sarama.SyncProducer
	topic      string
	identityID int64
	now        func() time.Time
}

func New(log handlerLogger, producer sarama.SyncProducer, topic string, identityID int64) *Sink {
	return &Sink{
		log:        log,
		producer:   producer,
		topic:      topic,
		identityID: identityID,
		now:        time.Now,
	}
}

func (s *Sink) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(message{
		ID:        uuid.NewString(),
		Source:    source,
		Identity:  s.identityID,
		Message:   text,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	partition, offset, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%d", s.identityID)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("publish notification to %s: %w", s.topic, err)
	}

	s.log.With(
		logger.NewField("topic", s.topic),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Debug("notification published")
	return nil
}
