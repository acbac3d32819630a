package domain

import "context"

// EventPublisher 事件发布者接口
type EventPublisher interface {
	// PublishScenarioRunCompleted 发布情景运行完成事件
	PublishScenarioRunCompleted(ctx context.Context, event ScenarioRunCompletedEvent) error
}
