package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harlanda/taxiway/internal/pkg/constants"
	"github.com/harlanda/taxiway/internal/pkg/database"
	"github.com/harlanda/taxiway/internal/pkg/models"
	"github.com/harlanda/taxiway/internal/utils"
	"github.com/harlanda/taxiway/services/match"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const matchColumns = `
	id, driver_id, driver_username, passenger_id, passenger_username,
	driver_confirmed, passenger_confirmed, status,
	driver_latitude, driver_longitude, passenger_latitude, passenger_longitude,
	created_at, updated_at
`

// MatchRepo implements the match repository interface
type MatchRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *MatchRepo {
	return &MatchRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

func scanMatch(row *sql.Row) (*models.Match, error) {
	var dto models.MatchDTO
	err := row.Scan(
		&dto.ID, &dto.DriverID, &dto.DriverUsername,
		&dto.PassengerID, &dto.PassengerUsername,
		&dto.DriverConfirmed, &dto.PassengerConfirmed, &dto.Status,
		&dto.DriverLatitude, &dto.DriverLongitude,
		&dto.PassengerLatitude, &dto.PassengerLongitude,
		&dto.CreatedAt, &dto.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return dto.ToMatch(), nil
}

// FindPendingByPair retrieves the pending match for a username pair,
// matching either ordering of the pair. Returns nil when none exists.
func (r *MatchRepo) FindPendingByPair(ctx context.Context, driverUsername, passengerUsername string) (*models.Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE status = $1
		  AND (
			(driver_username = $2 AND passenger_username = $3)
			OR (driver_username = $3 AND passenger_username = $2)
		  )
		LIMIT 1
	`

	m, err := scanMatch(r.db.QueryRowContext(ctx, query, models.MatchStatusPending, driverUsername, passengerUsername))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find pending match: %w", err)
	}
	return m, nil
}

// FindActiveByRole retrieves the most recent pending or matched record where
// the given role's id column equals userID. Returns nil when none exists.
func (r *MatchRepo) FindActiveByRole(ctx context.Context, userID string, role models.Role) (*models.Match, error) {
	idColumn := "driver_id"
	if role == models.RolePassenger {
		idColumn = "passenger_id"
	}

	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE ` + idColumn + ` = $1 AND status IN ($2, $3)
		ORDER BY created_at DESC
		LIMIT 1
	`

	m, err := scanMatch(r.db.QueryRowContext(ctx, query, userID, models.MatchStatusPending, models.MatchStatusMatched))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find active match: %w", err)
	}
	return m, nil
}

// GetMatch retrieves a match by ID
func (r *MatchRepo) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE id = $1
	`

	m, err := scanMatch(r.db.QueryRowContext(ctx, query, matchID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, match.ErrMatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

// InsertMatch persists a new match. The unique partial index on the
// normalized username pair turns a lost find-or-create race into
// ErrDuplicatePair instead of a second pending row.
func (r *MatchRepo) InsertMatch(ctx context.Context, m *models.Match) (*models.Match, error) {
	m.ID = uuid.New().String()
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.Status == "" {
		m.Status = models.MatchStatusPending
	}

	query := `
		INSERT INTO matches (
			id, driver_id, driver_username, passenger_id, passenger_username,
			driver_confirmed, passenger_confirmed, status,
			driver_latitude, driver_longitude, passenger_latitude, passenger_longitude,
			created_at, updated_at
		) VALUES (
			:id, :driver_id, :driver_username, :passenger_id, :passenger_username,
			:driver_confirmed, :passenger_confirmed, :status,
			:driver_latitude, :driver_longitude, :passenger_latitude, :passenger_longitude,
			:created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, m.ToDTO())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, match.ErrDuplicatePair
		}
		return nil, fmt.Errorf("failed to insert match: %w", err)
	}

	return m, nil
}

// UpdateMatch persists the mutable match fields (identities, usernames,
// confirmation flags, status)
func (r *MatchRepo) UpdateMatch(ctx context.Context, m *models.Match) (*models.Match, error) {
	m.UpdatedAt = time.Now()

	query := `
		UPDATE matches
		SET driver_id = :driver_id,
		    driver_username = :driver_username,
		    passenger_id = :passenger_id,
		    passenger_username = :passenger_username,
		    driver_confirmed = :driver_confirmed,
		    passenger_confirmed = :passenger_confirmed,
		    status = :status,
		    updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, m.ToDTO())
	if err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, match.ErrMatchNotFound
	}

	return m, nil
}

// UpdateGPS overwrites the caller-role's coordinates. Last write wins.
func (r *MatchRepo) UpdateGPS(ctx context.Context, matchID string, role models.Role, latitude, longitude float64) (*models.Match, error) {
	latColumn, lonColumn := "driver_latitude", "driver_longitude"
	if role == models.RolePassenger {
		latColumn, lonColumn = "passenger_latitude", "passenger_longitude"
	}

	query := `
		UPDATE matches
		SET ` + latColumn + ` = $1, ` + lonColumn + ` = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, latitude, longitude, time.Now(), matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to update GPS: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, match.ErrMatchNotFound
	}

	return r.GetMatch(ctx, matchID)
}

// DeleteMatch removes a match. Deleting a non-existent id is not an error;
// pollers on both sides may race to cancel the same record.
func (r *MatchRepo) DeleteMatch(ctx context.Context, matchID string) error {
	query := `DELETE FROM matches WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, matchID)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}

// CompleteMatch marks a match completed. Silently no-ops when the match
// is absent.
func (r *MatchRepo) CompleteMatch(ctx context.Context, matchID string) error {
	query := `UPDATE matches SET status = $1, updated_at = $2 WHERE id = $3`

	_, err := r.db.ExecContext(ctx, query, models.MatchStatusCompleted, time.Now(), matchID)
	if err != nil {
		return fmt.Errorf("failed to complete match: %w", err)
	}
	return nil
}

// AcquirePairLock takes the per-pair request lock. Returns false when
// another request for the same pair currently holds it.
func (r *MatchRepo) AcquirePairLock(ctx context.Context, pairKey string) (bool, error) {
	key := fmt.Sprintf(constants.KeyPairLock, pairKey)
	ttl := time.Duration(r.cfg.Match.PairLockTTLSeconds) * time.Second

	acquired, err := r.redisClient.SetNX(ctx, key, time.Now().UnixNano(), ttl)
	if err != nil {
		return false, fmt.Errorf("failed to acquire pair lock: %w", err)
	}
	return acquired, nil
}

// ReleasePairLock releases the per-pair request lock
func (r *MatchRepo) ReleasePairLock(ctx context.Context, pairKey string) error {
	key := fmt.Sprintf(constants.KeyPairLock, pairKey)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to release pair lock: %w", err)
	}
	return nil
}

// StoreRoleLocation caches a party's last reported location with its
// geohash cell for downstream consumers
func (r *MatchRepo) StoreRoleLocation(ctx context.Context, userID string, role models.Role, location models.Location) error {
	keyTemplate := constants.KeyDriverLocation
	if role == models.RolePassenger {
		keyTemplate = constants.KeyPassengerLocation
	}

	precision := r.cfg.Match.GeohashPrecision
	if precision == 0 {
		precision = 7
	}

	locationKey := fmt.Sprintf(keyTemplate, userID)
	locationData := map[string]interface{}{
		constants.FieldLatitude:  location.Latitude,
		constants.FieldLongitude: location.Longitude,
		constants.FieldGeohash: utils.EncodeLocation(utils.GeoPoint{
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
		}, precision),
		constants.FieldTimestamp: time.Now().Unix(),
	}

	if err := r.redisClient.HMSet(ctx, locationKey, locationData); err != nil {
		return fmt.Errorf("failed to store location: %w", err)
	}
	return nil
}

// SetActiveMatch stores active match keys for both parties that have joined
func (r *MatchRepo) SetActiveMatch(ctx context.Context, m *models.Match) error {
	if m.DriverID != nil {
		key := fmt.Sprintf(constants.KeyActiveMatchDriver, *m.DriverID)
		if err := r.redisClient.Set(ctx, key, m.ID, 0); err != nil {
			return fmt.Errorf("failed to set active match for driver: %w", err)
		}
	}
	if m.PassengerID != nil {
		key := fmt.Sprintf(constants.KeyActiveMatchPassenger, *m.PassengerID)
		if err := r.redisClient.Set(ctx, key, m.ID, 0); err != nil {
			return fmt.Errorf("failed to set active match for passenger: %w", err)
		}
	}
	return nil
}

// ClearActiveMatch removes active match keys for both parties
func (r *MatchRepo) ClearActiveMatch(ctx context.Context, m *models.Match) error {
	if m.DriverID != nil {
		key := fmt.Sprintf(constants.KeyActiveMatchDriver, *m.DriverID)
		if err := r.redisClient.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to clear active match for driver: %w", err)
		}
	}
	if m.PassengerID != nil {
		key := fmt.Sprintf(constants.KeyActiveMatchPassenger, *m.PassengerID)
		if err := r.redisClient.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to clear active match for passenger: %w", err)
		}
	}
	return nil
}
