package kafka

import (
	"context"

	"github.com/Ekrem-A/Catalog.Api/pkg/logger"
)

// NopPublisher — заглушка издателя для работы без брокера.
// События пишутся только в лог.
type NopPublisher struct {
	logger logger.Logger
}

func NewNopPublisher(logger logger.Logger) *NopPublisher {
	return &NopPublisher{logger: logger}
}

func (n *NopPublisher) Publish(ctx context.Context, topic, eventType string, event any) error {
	n.logger.Debugf("Event publishing disabled, dropping %s for %s", eventType, topic)

	return nil
}
