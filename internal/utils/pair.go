package utils

import (
	"strings"

	"github.com/harlanda/taxiway/internal/pkg/models"
)

// NormalizePair maps a caller's own username and their target's username to
// the canonical (driverUsername, passengerUsername) ordering based on the
// caller's role.
func NormalizePair(role models.Role, username, targetUsername string) (driverUsername, passengerUsername string) {
	if role == models.RoleDriver {
		return username, targetUsername
	}
	return targetUsername, username
}

// PairKey builds an order-independent key for a username pair, used for the
// per-pair request lock. Both orderings of the same two usernames produce
// the same key.
func PairKey(usernameA, usernameB string) string {
	if usernameA > usernameB {
		usernameA, usernameB = usernameB, usernameA
	}
	return strings.Join([]string{usernameA, usernameB}, ":")
}
