package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlanda/taxiway/internal/pkg/models"
	"github.com/harlanda/taxiway/services/match"
	"github.com/harlanda/taxiway/services/match/mocks"
)

func setupMatchUCTest(t *testing.T) (*MatchUC, *mocks.MockMatchRepo, *mocks.MockMatchGW, func()) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockMatchRepo(ctrl)
	mockGW := mocks.NewMockMatchGW(ctrl)

	cfg := &models.Config{}
	cfg.Match.PairLockTTLSeconds = 5

	uc := NewMatchUC(cfg, mockRepo, mockGW)

	return uc, mockRepo, mockGW, ctrl.Finish
}

func strPtr(s string) *string { return &s }

func TestRequestMatch_FirstRequestCreatesPending(t *testing.T) {
	uc, mockRepo, _, finish := setupMatchUCTest(t)
	defer finish()

	ctx := context.Background()

	mockRepo.EXPECT().AcquirePairLock(ctx, "alice:bob").Return(true, nil)
	mockRepo.EXPECT().FindPendingByPair(ctx, "alice", "bob").Return(nil, nil)
	mockRepo.EXPECT().InsertMatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *models.Match) (*models.Match, error) {
			m.ID = "match-1"
			return m, nil
		})
	mockRepo.EXPECT().ReleasePairLock(ctx, "alice:bob").Return(nil)

	result, err := uc.RequestMatch(ctx, "drv-1", "alice", models.RoleDriver, "bob")
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "match-1", result.ID)
	assert.Equal(t, models.MatchStatusPending, result.Status)
	assert.Equal(t, "drv-1", *result.DriverID)
	assert.Equal(t, "alice", *result.DriverUsername)
	assert.Equal(t, "bob", *result.PassengerUsername)
	assert.True(t, result.DriverConfirmed)
	assert.False(t, result.PassengerConfirmed)
	assert.Nil(t, result.PassengerID)
}

func TestRequestMatch_CounterpartRequestCompletesMatch(t *testing.T) {
	uc, mockRepo, mockGW, finish := setupMatchUCTest(t)
	defer finish()

	ctx := context.Background()

	// Pending row created earlier by the driver's request. The passenger
	// names the pair in reverse: their own username is "bob", target "alice".
	pending := &models.Match{
		ID:                "match-1",
		DriverID:          strPtr("drv-1"),
		DriverUsername:    strPtr("alice"),
		PassengerUsername: strPtr("bob"),
		DriverConfirmed:   true,
		Status:            models.MatchStatusPending,
	}

	mockRepo.EXPECT().AcquirePairLock(ctx, "alice:bob").Return(true, nil)
	mockRepo.EXPECT().FindPendingByPair(ctx, "alice", "bob").Return(pending, nil)
	mockRepo.EXPECT().UpdateMatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *models.Match) (*models.Match, error) {
			return m, nil
		})
	mockRepo.EXPECT().SetActiveMatch(ctx, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishMatchMatched(ctx, gomock.Any()).Return(nil)
	mockRepo.EXPECT().ReleasePairLock(ctx, "alice:bob").Return(nil)

	result, err := uc.RequestMatch(ctx, "psg-1", "bob", models.RolePassenger, "alice")
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.MatchStatusMatched, result.Status)
	assert.Equal(t, "psg-1", *result.PassengerID)
	assert.True(t, result.DriverConfirmed)
	assert.True(t, result.PassengerConfirmed)
}

func TestRequestMatch_RepeatRequestIsIdempotent(t *testing.T) {
	uc, mockRepo, _, finish := setupMatchUCTest(t)
	defer finish()

	ctx := context.Background()

	pending := &models.Match{
		ID:                "match-1",
		DriverID:          strPtr("drv-1"),
		DriverUsername:    strPtr("alice"),
		PassengerUsername: strPtr("bob"),
		DriverConfirmed:   true,
		Status:            models.MatchStatusPending,
	}

	mockRepo.EXPECT().AcquirePairLock(ctx, "alice:bob").Return(true, nil)
	mockRepo.EXPECT().FindPendingByPair(ctx, "alice", "bob").Return(pending, nil)
	mockRepo.EXPECT().UpdateMatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *models.Match) (*models.Match, error) {
			return m, nil
		})
	mockRepo.EXPECT().ReleasePairLock(ctx, "alice:bob").Return(nil)

	result, err := uc.RequestMatch(ctx, "drv-1", "alice", models.RoleDriver, "bob")
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, models.MatchStatusPending, result.Status)
	assert.Equal(t, "drv-1", *result.DriverID)
	assert.False(t, result.PassengerConfirmed)
}

func TestRequestMatch_RejoiningRoleTakesOverIdentity(t *testing.T) {
	uc, mockRepo, _, finish := setupMatchUCTest(t)
	defer finish()

	ctx := context.Background()

	pending := &models.Match{
		ID:                "match-1",
		DriverID:          strPtr("drv-old"),
		DriverUsername:    strPtr("alice"),
		PassengerUsername: strPtr("bob"),
		DriverConfirmed:   true,
		Status:            models.MatchStatusPending,
	}

	mockRepo.EXPECT().AcquirePairLock(ctx, "alice:bob").Return(true, nil)
	mockRepo.EXPECT().FindPendingByPair(ctx, "alice", "bob").Return(pending, nil)
	mockRepo.EXPECT().UpdateMatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *models.Match) (*models.Match, error) {
			return m, nil
		})
	mockRepo.EXPECT().ReleasePairLock(ctx, "alice:bob").Return(nil)

	result, err := uc.RequestMatch(ctx, "drv-new", "alice", models.RoleDriver, "bob")
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "drv-new", *result.DriverID)
	assert.Equal(t, models.MatchStatusPending, result.Status)
}

func TestRequestMatch_DuplicatePairRaceJoinsWinnerRow(t *testing.T) {
	uc, mockRepo, mockGW, finish := setupMatchUCTest(t)
	defer finish()

	ctx := context.Background()

	winner := &models.Match{
		ID:                 "match-1",
		PassengerID:        strPtr("psg-1"),
		DriverUsername:     strPtr("alice"),
		PassengerUsername:  strPtr("bob"),
		PassengerConfirmed: true,
		Status:             models.MatchStatusPending,
	}

	mockRepo.EXPECT().AcquirePairLock(ctx, "alice:bob").Return(true, nil)
	// Initial read sees nothing; the insert loses to a concurrent request
	mockRepo.EXPECT().FindPendingByPair(ctx, "alice", "bob").Return(nil, nil)
	mockRepo.EXPECT().InsertMatch(ctx, gomock.Any()).Return(nil, match.ErrDuplicatePair)
	mockRepo.EXPECT().FindPendingByPair(ctx, "alice", "bob").Return(winner, nil)
	mockRepo.EXPECT().UpdateMatch(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *models.Match) (*models.Match, error) {
			return m, nil
		})
	mockRepo.EXPECT().SetActiveMatch(ctx, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishMatchMatched(ctx, gomock.Any()).Return(nil)
	mockRepo.EXPECT().ReleasePairLock(ctx, "alice:bob").Return(nil)

	result, err := uc.RequestMatch(ctx, "drv-1", "alice", models.RoleDriver, "bob")
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "match-1", result.ID)
	assert.Equal(t, models.MatchStatusMatched, result.Status)
	assert.Equal(t, "drv-1", *result.DriverID)
}

func TestRequestMatch_InvalidRole(t *testing.T) {
	uc, _, _, finish := setupMatchUCTest(t)
	defer finish()

	result, err := uc.RequestMatch(context.Background(), "u-1", "alice", "pilot", "bob")
	assert.ErrorIs(t, err, match.ErrInvalidRole)
	assert.Nil(t, result)
}

func TestGetMatchStatus(t *testing.T) {
	t.Run("No Active Match Returns Nil", func(t *testing.T) {
		uc, mockRepo, _, finish := setupMatchUCTest(t)
		defer finish()

		ctx := context.Background()
		mockRepo.EXPECT().FindActiveByRole(ctx, "drv-1", models.RoleDriver).Return(nil, nil)

		result, err := uc.GetMatchStatus(ctx, "drv-1", models.RoleDriver)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("Invalid Role", func(t *testing.T) {
		uc, _, _, finish := setupMatchUCTest(t)
		defer finish()

		result, err := uc.GetMatchStatus(context.Background(), "u-1", "pilot")
		assert.ErrorIs(t, err, match.ErrInvalidRole)
		assert.Nil(t, result)
	})
}

func TestUpdateGPS(t *testing.T) {
	t.Run("Updates Coordinates And Caches Location", func(t *testing.T) {
		uc, mockRepo, _, finish := setupMatchUCTest(t)
		defer finish()

		ctx := context.Background()
		lat, lon := 1.3644, 103.9915
		updated := &models.Match{
			ID:              "match-1",
			DriverLatitude:  &lat,
			DriverLongitude: &lon,
			Status:          models.MatchStatusMatched,
		}

		mockRepo.EXPECT().UpdateGPS(ctx, "match-1", models.RoleDriver, lat, lon).Return(updated, nil)
		mockRepo.EXPECT().StoreRoleLocation(ctx, "drv-1", models.RoleDriver, gomock.Any()).Return(nil)

		result, err := uc.UpdateGPS(ctx, "match-1", "drv-1", models.RoleDriver, lat, lon)
		assert.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, lat, *result.DriverLatitude)
	})

	t.Run("Unknown Match", func(t *testing.T) {
		uc, mockRepo, _, finish := setupMatchUCTest(t)
		defer finish()

		ctx := context.Background()
		mockRepo.EXPECT().UpdateGPS(ctx, "missing", models.RolePassenger, 1.0, 2.0).
			Return(nil, match.ErrMatchNotFound)

		result, err := uc.UpdateGPS(ctx, "missing", "psg-1", models.RolePassenger, 1.0, 2.0)
		assert.ErrorIs(t, err, match.ErrMatchNotFound)
		assert.Nil(t, result)
	})

	t.Run("Cache Failure Does Not Fail The Update", func(t *testing.T) {
		uc, mockRepo, _, finish := setupMatchUCTest(t)
		defer finish()

		ctx := context.Background()
		updated := &models.Match{ID: "match-1", Status: models.MatchStatusMatched}

		mockRepo.EXPECT().UpdateGPS(ctx, "match-1", models.RoleDriver, 1.0, 2.0).Return(updated, nil)
		mockRepo.EXPECT().StoreRoleLocation(ctx, "drv-1", models.RoleDriver, gomock.Any()).
			Return(errors.New("redis down"))

		result, err := uc.UpdateGPS(ctx, "match-1", "drv-1", models.RoleDriver, 1.0, 2.0)
		assert.NoError(t, err)
		assert.NotNil(t, result)
	})
}

func TestCancelMatch(t *testing.T) {
	t.Run("Deletes And Publishes", func(t *testing.T) {
		uc, mockRepo, mockGW, finish := setupMatchUCTest(t)
		defer finish()

		ctx := context.Background()
		m := &models.Match{
			ID:       "match-1",
			DriverID: strPtr("drv-1"),
			Status:   models.MatchStatusPending,
		}

		mockRepo.EXPECT().GetMatch(ctx, "match-1").Return(m, nil)
		mockRepo.EXPECT().DeleteMatch(ctx, "match-1").Return(nil)
		mockRepo.EXPECT().ClearActiveMatch(ctx, m).Return(nil)
		mockGW.EXPECT().PublishMatchCancelled(ctx, gomock.Any()).Return(nil)

		err := uc.CancelMatch(ctx, "match-1")
		assert.NoError(t, err)
	})

	t.Run("Already Gone Is Success", func(t *testing.T) {
		uc, mockRepo, _, finish := setupMatchUCTest(t)
		defer finish()

		ctx := context.Background()
		mockRepo.EXPECT().GetMatch(ctx, "missing").Return(nil, match.ErrMatchNotFound)

		err := uc.CancelMatch(ctx, "missing")
		assert.NoError(t, err)
	})
}

func TestCompleteMatch(t *testing.T) {
	t.Run("Marks Completed And Publishes", func(t *testing.T) {
		uc, mockRepo, mockGW, finish := setupMatchUCTest(t)
		defer finish()

		ctx := context.Background()
		m := &models.Match{
			ID:          "match-1",
			DriverID:    strPtr("drv-1"),
			PassengerID: strPtr("psg-1"),
			Status:      models.MatchStatusMatched,
		}

		mockRepo.EXPECT().GetMatch(ctx, "match-1").Return(m, nil)
		mockRepo.EXPECT().CompleteMatch(ctx, "match-1").Return(nil)
		mockRepo.EXPECT().ClearActiveMatch(ctx, m).Return(nil)
		mockGW.EXPECT().PublishMatchCompleted(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, event models.MatchEvent) error {
				assert.Equal(t, models.MatchStatusCompleted, event.Status)
				return nil
			})

		err := uc.CompleteMatch(ctx, "match-1")
		assert.NoError(t, err)
	})

	t.Run("Absent Match Is A No-Op", func(t *testing.T) {
		uc, mockRepo, _, finish := setupMatchUCTest(t)
		defer finish()

		ctx := context.Background()
		mockRepo.EXPECT().GetMatch(ctx, "missing").Return(nil, match.ErrMatchNotFound)

		err := uc.CompleteMatch(ctx, "missing")
		assert.NoError(t, err)
	})
}
