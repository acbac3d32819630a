package publisher

import (
	"context"

	"github.com/wyfcoding/riskanalytics/internal/riskanalytics/domain"
	"github.com/wyfcoding/riskanalytics/pkg/mq"
)

type KafkaEventPublisher struct {
	producer *mq.KafkaProducer
	topic    string
}

func NewKafkaEventPublisher(producer *mq.KafkaProducer, topic string) domain.EventPublisher {
	return &KafkaEventPublisher{producer: producer, topic: topic}
}

func (p *KafkaEventPublisher) PublishScenarioRunCompleted(ctx context.Context, event domain.ScenarioRunCompletedEvent) error {
	return p.producer.SendMessage(ctx, p.topic, event.PortfolioID, event)
}
