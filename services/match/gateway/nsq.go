package gateway

import (
	"context"
	"fmt"

	"github.com/harlanda/taxiway/internal/pkg/constants"
	"github.com/harlanda/taxiway/internal/pkg/logger"
	"github.com/harlanda/taxiway/internal/pkg/models"
	nsqpkg "github.com/harlanda/taxiway/internal/pkg/nsq"
)

// MatchGW publishes match lifecycle events to NSQ
type MatchGW struct {
	producer *nsqpkg.Producer
}

// NewMatchGW creates a new match gateway
func NewMatchGW(producer *nsqpkg.Producer) *MatchGW {
	return &MatchGW{producer: producer}
}

func (g *MatchGW) publish(topic string, event models.MatchEvent) error {
	if err := g.producer.Publish(topic, event); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", topic, err)
	}

	logger.Debug("Published match event",
		logger.String("topic", topic),
		logger.String("match_id", event.MatchID))
	return nil
}

// PublishMatchMatched publishes an event when both parties have confirmed
func (g *MatchGW) PublishMatchMatched(ctx context.Context, event models.MatchEvent) error {
	return g.publish(constants.TopicMatchMatched, event)
}

// PublishMatchCompleted publishes an event when a pickup is completed
func (g *MatchGW) PublishMatchCompleted(ctx context.Context, event models.MatchEvent) error {
	return g.publish(constants.TopicMatchCompleted, event)
}

// PublishMatchCancelled publishes an event when a match is cancelled
func (g *MatchGW) PublishMatchCancelled(ctx context.Context, event models.MatchEvent) error {
	return g.publish(constants.TopicMatchCancelled, event)
}
