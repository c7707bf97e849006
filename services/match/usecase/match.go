package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/harlanda/taxiway/internal/pkg/logger"
	"github.com/harlanda/taxiway/internal/pkg/models"
	"github.com/harlanda/taxiway/internal/utils"
	"github.com/harlanda/taxiway/services/match"
)

const (
	pairLockRetries  = 10
	pairLockRetryGap = 50 * time.Millisecond
)

// RequestMatch merges two independent pairing requests into one record.
// The first caller creates a pending match with their own side confirmed;
// the counterpart's request completes it. Repeat calls from the same role
// are idempotent, and a caller re-joining with a new user id takes over
// that role's identity.
func (uc *MatchUC) RequestMatch(ctx context.Context, userID, username string, role models.Role, targetUsername string) (*models.Match, error) {
	if !role.IsValid() {
		return nil, match.ErrInvalidRole
	}

	driverUsername, passengerUsername := utils.NormalizePair(role, username, targetUsername)
	pairKey := utils.PairKey(driverUsername, passengerUsername)

	// Serialize the find-or-create sequence for this pair. If the lock
	// cannot be taken in time we proceed anyway: the unique partial index
	// on the pending pair still prevents a duplicate row.
	locked, err := uc.acquirePairLock(ctx, pairKey)
	if err != nil {
		return nil, err
	}
	if locked {
		defer func() {
			if err := uc.matchRepo.ReleasePairLock(ctx, pairKey); err != nil {
				logger.Warn("Failed to release pair lock",
					logger.String("pair_key", pairKey),
					logger.Err(err))
			}
		}()
	}

	existing, err := uc.matchRepo.FindPendingByPair(ctx, driverUsername, passengerUsername)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		created, err := uc.createPendingMatch(ctx, userID, role, driverUsername, passengerUsername)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, match.ErrDuplicatePair) {
			return nil, err
		}

		// Lost the race to a concurrent first request; join the winner's row.
		existing, err = uc.matchRepo.FindPendingByPair(ctx, driverUsername, passengerUsername)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, match.ErrMatchNotFound
		}
	}

	applyRoleConfirmation(existing, userID, role, driverUsername, passengerUsername)

	updated, err := uc.matchRepo.UpdateMatch(ctx, existing)
	if err != nil {
		return nil, err
	}

	if updated.Status == models.MatchStatusMatched {
		uc.onMatched(ctx, updated)
	}

	return updated, nil
}

func (uc *MatchUC) acquirePairLock(ctx context.Context, pairKey string) (bool, error) {
	for attempt := 0; attempt < pairLockRetries; attempt++ {
		acquired, err := uc.matchRepo.AcquirePairLock(ctx, pairKey)
		if err != nil {
			return false, err
		}
		if acquired {
			return true, nil
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(pairLockRetryGap):
		}
	}

	logger.Warn("Proceeding without pair lock", logger.String("pair_key", pairKey))
	return false, nil
}

func (uc *MatchUC) createPendingMatch(ctx context.Context, userID string, role models.Role, driverUsername, passengerUsername string) (*models.Match, error) {
	m := &models.Match{
		DriverUsername:    &driverUsername,
		PassengerUsername: &passengerUsername,
		Status:            models.MatchStatusPending,
	}
	if role == models.RoleDriver {
		m.DriverID = &userID
		m.DriverConfirmed = true
	} else {
		m.PassengerID = &userID
		m.PassengerConfirmed = true
	}

	created, err := uc.matchRepo.InsertMatch(ctx, m)
	if err != nil {
		return nil, err
	}

	logger.Info("Created pending match",
		logger.String("match_id", created.ID),
		logger.String("driver_username", driverUsername),
		logger.String("passenger_username", passengerUsername),
		logger.String("requested_by", string(role)))

	return created, nil
}

// applyRoleConfirmation advances an existing record for one party's request:
// repairs partially-formed username fields, normalizes stored order to
// (driver, passenger), then applies the role-specific confirmation
// transition.
func applyRoleConfirmation(m *models.Match, userID string, role models.Role, driverUsername, passengerUsername string) {
	// Backfill usernames on partially-formed records
	if m.DriverUsername == nil || m.PassengerUsername == nil {
		m.DriverUsername = &driverUsername
		m.PassengerUsername = &passengerUsername
	}

	// Normalize reversed ordering
	if *m.DriverUsername == passengerUsername && *m.PassengerUsername == driverUsername {
		m.DriverUsername = &driverUsername
		m.PassengerUsername = &passengerUsername
	}

	if role == models.RoleDriver {
		switch {
		case m.PassengerConfirmed && !m.DriverConfirmed:
			// Passenger already confirmed; this request completes the match
			m.DriverID = &userID
			m.DriverConfirmed = true
			m.Status = models.MatchStatusMatched
		case !m.DriverConfirmed:
			m.DriverID = &userID
			m.DriverConfirmed = true
			if m.PassengerConfirmed {
				m.Status = models.MatchStatusMatched
			}
		case m.DriverID == nil || *m.DriverID != userID:
			// Same role re-joined under a new identity; last writer wins
			m.DriverID = &userID
		}
		return
	}

	switch {
	case m.DriverConfirmed && !m.PassengerConfirmed:
		m.PassengerID = &userID
		m.PassengerConfirmed = true
		m.Status = models.MatchStatusMatched
	case !m.PassengerConfirmed:
		m.PassengerID = &userID
		m.PassengerConfirmed = true
		if m.DriverConfirmed {
			m.Status = models.MatchStatusMatched
		}
	case m.PassengerID == nil || *m.PassengerID != userID:
		m.PassengerID = &userID
	}
}

// onMatched records active-match keys and publishes the lifecycle event.
// Both are best effort; the persisted row is the source of truth the
// pollers observe.
func (uc *MatchUC) onMatched(ctx context.Context, m *models.Match) {
	if err := uc.matchRepo.SetActiveMatch(ctx, m); err != nil {
		logger.Warn("Failed to set active match keys",
			logger.String("match_id", m.ID),
			logger.Err(err))
	}

	if err := uc.matchGW.PublishMatchMatched(ctx, matchEvent(m)); err != nil {
		logger.Warn("Failed to publish match matched event",
			logger.String("match_id", m.ID),
			logger.Err(err))
	}

	logger.Info("Match fully confirmed",
		logger.String("match_id", m.ID))
}

// GetMatchStatus returns the caller's active match, or nil when the caller
// is not part of any pending or matched record.
func (uc *MatchUC) GetMatchStatus(ctx context.Context, userID string, role models.Role) (*models.Match, error) {
	if !role.IsValid() {
		return nil, match.ErrInvalidRole
	}
	return uc.matchRepo.FindActiveByRole(ctx, userID, role)
}

// FindByID retrieves a match by id
func (uc *MatchUC) FindByID(ctx context.Context, matchID string) (*models.Match, error) {
	return uc.matchRepo.GetMatch(ctx, matchID)
}

// UpdateGPS overwrites the caller-role's coordinates on the match. The
// asserted role is trusted; ownership is not checked against the stored
// identity fields.
func (uc *MatchUC) UpdateGPS(ctx context.Context, matchID, userID string, role models.Role, latitude, longitude float64) (*models.Match, error) {
	if !role.IsValid() {
		return nil, match.ErrInvalidRole
	}

	updated, err := uc.matchRepo.UpdateGPS(ctx, matchID, role, latitude, longitude)
	if err != nil {
		return nil, err
	}

	location := models.Location{Latitude: latitude, Longitude: longitude, Timestamp: time.Now()}
	if err := uc.matchRepo.StoreRoleLocation(ctx, userID, role, location); err != nil {
		logger.Warn("Failed to cache role location",
			logger.String("match_id", matchID),
			logger.Err(err))
	}

	uc.logPairDistance(updated)

	return updated, nil
}

// logPairDistance reports how far apart the two parties are once both
// sides have coordinates
func (uc *MatchUC) logPairDistance(m *models.Match) {
	if m.DriverLatitude == nil || m.DriverLongitude == nil ||
		m.PassengerLatitude == nil || m.PassengerLongitude == nil {
		return
	}

	distanceKm := utils.CalculateDistance(
		utils.GeoPoint{Latitude: *m.DriverLatitude, Longitude: *m.DriverLongitude},
		utils.GeoPoint{Latitude: *m.PassengerLatitude, Longitude: *m.PassengerLongitude},
	)

	logger.Debug("Pair distance updated",
		logger.String("match_id", m.ID),
		logger.Float64("distance_km", distanceKm))
}

// CancelMatch deletes a match. Idempotent: cancelling an already-gone
// match succeeds.
func (uc *MatchUC) CancelMatch(ctx context.Context, matchID string) error {
	m, err := uc.matchRepo.GetMatch(ctx, matchID)
	if errors.Is(err, match.ErrMatchNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := uc.matchRepo.DeleteMatch(ctx, matchID); err != nil {
		return err
	}

	if err := uc.matchRepo.ClearActiveMatch(ctx, m); err != nil {
		logger.Warn("Failed to clear active match keys",
			logger.String("match_id", matchID),
			logger.Err(err))
	}

	if err := uc.matchGW.PublishMatchCancelled(ctx, matchEvent(m)); err != nil {
		logger.Warn("Failed to publish match cancelled event",
			logger.String("match_id", matchID),
			logger.Err(err))
	}

	return nil
}

// CompleteMatch marks a match completed. Silent no-op when the match is
// absent, because both pollers may race to complete the same record.
func (uc *MatchUC) CompleteMatch(ctx context.Context, matchID string) error {
	m, err := uc.matchRepo.GetMatch(ctx, matchID)
	if errors.Is(err, match.ErrMatchNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := uc.matchRepo.CompleteMatch(ctx, matchID); err != nil {
		return err
	}

	if err := uc.matchRepo.ClearActiveMatch(ctx, m); err != nil {
		logger.Warn("Failed to clear active match keys",
			logger.String("match_id", matchID),
			logger.Err(err))
	}

	m.Status = models.MatchStatusCompleted
	if err := uc.matchGW.PublishMatchCompleted(ctx, matchEvent(m)); err != nil {
		logger.Warn("Failed to publish match completed event",
			logger.String("match_id", matchID),
			logger.Err(err))
	}

	return nil
}

func matchEvent(m *models.Match) models.MatchEvent {
	event := models.MatchEvent{
		MatchID: m.ID,
		Status:  m.Status,
	}
	if m.DriverID != nil {
		event.DriverID = *m.DriverID
	}
	if m.PassengerID != nil {
		event.PassengerID = *m.PassengerID
	}
	return event
}
