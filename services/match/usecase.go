package match

import (
	"context"

	"github.com/harlanda/taxiway/internal/pkg/models"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// MatchUC defines the interface for match coordination business logic
type MatchUC interface {
	RequestMatch(ctx context.Context, userID, username string, role models.Role, targetUsername string) (*models.Match, error)
	GetMatchStatus(ctx context.Context, userID string, role models.Role) (*models.Match, error)
	FindByID(ctx context.Context, matchID string) (*models.Match, error)
	UpdateGPS(ctx context.Context, matchID, userID string, role models.Role, latitude, longitude float64) (*models.Match, error)
	CancelMatch(ctx context.Context, matchID string) error
	CompleteMatch(ctx context.Context, matchID string) error
}
