package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harlanda/taxiway/internal/pkg/models"
)

func TestNormalizePair(t *testing.T) {
	t.Run("Driver Caller Keeps Own Name First", func(t *testing.T) {
		driver, passenger := NormalizePair(models.RoleDriver, "alice", "bob")
		assert.Equal(t, "alice", driver)
		assert.Equal(t, "bob", passenger)
	})

	t.Run("Passenger Caller Swaps To Canonical Order", func(t *testing.T) {
		driver, passenger := NormalizePair(models.RolePassenger, "bob", "alice")
		assert.Equal(t, "alice", driver)
		assert.Equal(t, "bob", passenger)
	})
}

func TestPairKey(t *testing.T) {
	// Both orderings of the same pair lock the same key
	assert.Equal(t, PairKey("alice", "bob"), PairKey("bob", "alice"))
	assert.Equal(t, "alice:bob", PairKey("bob", "alice"))
	assert.NotEqual(t, PairKey("alice", "bob"), PairKey("alice", "carol"))
}
