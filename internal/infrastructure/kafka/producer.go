package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Ekrem-A/Catalog.Api/internal/cfg"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/Ekrem-A/Catalog.Api/pkg/jitter"
	"github.com/Ekrem-A/Catalog.Api/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

const (
	retryBackoffBase = time.Second
	retryBackoffMax  = 10 * time.Second
)

// Producer публикует доменные события каталога в Kafka.
// Топик задаётся на уровне сообщения, один writer обслуживает все топики.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *cfg.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *cfg.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: cfg.WriteTimeout,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// Publish отправляет событие в topic в формате JSON. Запись повторяется
// с экспоненциальной задержкой не более cfg.MaxRetries раз.
func (p *Producer) Publish(ctx context.Context, topic, eventType string, event any) error {
	value, err := json.Marshal(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(uuid.NewString()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
			{Key: "timestamp", Value: []byte(time.Now().UTC().Format(time.RFC3339Nano))},
			{Key: "correlation-id", Value: []byte(correlationID(ctx))},
		},
	}

	for attempt := 0; ; attempt++ {
		err = p.writer.WriteMessages(ctx, msg)
		if err == nil {
			p.logger.Debugf("Published %s to %s", eventType, topic)
			return nil
		}

		if attempt >= p.cfg.MaxRetries || ctx.Err() != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		backoff := jitter.ExponentialBackoff(retryBackoffBase, retryBackoffMax, attempt, jitter.DefaultJitter)
		p.logger.Warnf("Kafka write failed (attempt %d), retrying in %s: %v", attempt+1, backoff, err)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return e.Wrap(whereami.WhereAmI(), ctx.Err())
		}
	}
}

// EnsureTopics создаёт недостающие топики при старте приложения.
func (p *Producer) EnsureTopics(timeout time.Duration, topics ...string) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	missing := make([]kafka.TopicConfig, 0, len(topics))
	for _, topic := range topics {
		partitions, err := conn.ReadPartitions(topic)
		if err == nil && len(partitions) > 0 {
			continue
		}

		missing = append(missing, kafka.TopicConfig{
			Topic:             topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
	}

	if len(missing) == 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(missing...)
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), fmt.Errorf("failed to create topics: %w", err))
		}
		return nil
	case <-time.After(timeout):
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("timeout creating topics: %v", timeout))
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// correlationID достаёт идентификатор корреляции из контекста запроса,
// при его отсутствии генерирует новый.
func correlationID(ctx context.Context) string {
	if id, ok := ctx.Value("correlation_id").(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}
