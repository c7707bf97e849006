package match

import (
	"context"

	"github.com/harlanda/taxiway/internal/pkg/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// MatchRepo defines the interface for match data access operations
type MatchRepo interface {
	// Match CRUD operations
	FindPendingByPair(ctx context.Context, driverUsername, passengerUsername string) (*models.Match, error)
	FindActiveByRole(ctx context.Context, userID string, role models.Role) (*models.Match, error)
	GetMatch(ctx context.Context, matchID string) (*models.Match, error)
	InsertMatch(ctx context.Context, match *models.Match) (*models.Match, error)
	UpdateMatch(ctx context.Context, match *models.Match) (*models.Match, error)
	UpdateGPS(ctx context.Context, matchID string, role models.Role, latitude, longitude float64) (*models.Match, error)
	DeleteMatch(ctx context.Context, matchID string) error
	CompleteMatch(ctx context.Context, matchID string) error

	// Per-pair request lock
	AcquirePairLock(ctx context.Context, pairKey string) (bool, error)
	ReleasePairLock(ctx context.Context, pairKey string) error

	// Redis caches consumed by downstream services
	StoreRoleLocation(ctx context.Context, userID string, role models.Role, location models.Location) error
	SetActiveMatch(ctx context.Context, match *models.Match) error
	ClearActiveMatch(ctx context.Context, match *models.Match) error
}
