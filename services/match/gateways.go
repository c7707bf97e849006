package match

import (
	"context"

	"github.com/harlanda/taxiway/internal/pkg/models"
)

//go:generate mockgen -source=gateways.go -destination=mocks/mock_gateway.go -package=mocks

// MatchGW defines the match gateway interface for lifecycle events
type MatchGW interface {
	PublishMatchMatched(ctx context.Context, event models.MatchEvent) error
	PublishMatchCompleted(ctx context.Context, event models.MatchEvent) error
	PublishMatchCancelled(ctx context.Context, event models.MatchEvent) error
}
