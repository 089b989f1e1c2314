// Package cryptox wraps password hashing and the constant-time checks used
// by the identity providers.
package cryptox

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password. A cost outside bcrypt's
// valid range falls back to bcrypt.DefaultCost.
func HashPassword(password []byte, cost int) ([]byte, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword(password, cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// CheckPassword reports whether password matches hash. Malformed hashes are
// reported as a mismatch.
func CheckPassword(hash, password []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, password) == nil
}

var (
	dummyMu     sync.Mutex
	dummyHashes = map[int][]byte{}
)

// BurnCompare runs a bcrypt comparison against a throwaway hash of the
// given cost. Providers call it when the email is unknown so a miss costs
// as much as a hit; cost must match the one accounts are hashed with.
func BurnCompare(password []byte, cost int) {
	if h := dummyHash(cost); h != nil {
		_ = bcrypt.CompareHashAndPassword(h, password)
	}
}

// dummyHash returns the cached throwaway hash for cost, normalised the same
// way HashPassword does.
func dummyHash(cost int) []byte {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	dummyMu.Lock()
	defer dummyMu.Unlock()
	if h, ok := dummyHashes[cost]; ok {
		return h
	}
	h, err := bcrypt.GenerateFromPassword([]byte("nutritrack-timing-equaliser"), cost)
	if err != nil {
		return nil
	}
	dummyHashes[cost] = h
	return h
}
