package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"tonotes/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRevocations struct{}

func (failingRevocations) Revoke(context.Context, string, time.Time) error {
	return errors.New("redis down")
}

func (failingRevocations) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func setupGate(t *testing.T) (*AccessGate, *MemoryTokenBlacklist) {
	t.Helper()
	clock := utils.FixedClock{Fixed: tokenEpoch.Add(time.Minute)}
	blacklist := NewMemoryTokenBlacklist(clock)
	return NewAccessGate(NewJWTVerifier(testSecret, "toNotes", clock), blacklist), blacklist
}

func TestAccessGateResolve(t *testing.T) {
	gate, _ := setupGate(t)

	identity, err := gate.Resolve(context.Background(), "  "+issue(t, "u1", time.Hour)+" ")
	require.NoError(t, err)
	assert.Equal(t, "u1", identity.UserID)
}

func TestAccessGateRejections(t *testing.T) {
	gate, _ := setupGate(t)

	for name, token := range map[string]string{
		"empty":   "",
		"blank":   "   ",
		"garbage": "abc",
		"expired": issue(t, "u1", time.Second),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := gate.Resolve(context.Background(), token)
			assert.ErrorIs(t, err, utils.ErrUnauthorized)
		})
	}
}

func TestAccessGateRevoke(t *testing.T) {
	gate, blacklist := setupGate(t)
	token := issue(t, "u1", time.Hour)

	require.NoError(t, gate.Revoke(context.Background(), token))

	revoked, err := blacklist.IsRevoked(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = gate.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, utils.ErrUnauthorized)

	// a revoked token cannot be revoked again
	assert.ErrorIs(t, gate.Revoke(context.Background(), token), utils.ErrUnauthorized)
}

func TestAccessGateRevokeWithoutStore(t *testing.T) {
	clock := utils.FixedClock{Fixed: tokenEpoch}
	gate := NewAccessGate(NewJWTVerifier(testSecret, "toNotes", clock), nil)
	token := issue(t, "u1", time.Hour)

	_, err := gate.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.ErrorIs(t, gate.Revoke(context.Background(), token), utils.ErrStorageUnavailable)
}

func TestAccessGateFailsOpenOnLookupError(t *testing.T) {
	clock := utils.FixedClock{Fixed: tokenEpoch}
	gate := NewAccessGate(NewJWTVerifier(testSecret, "toNotes", clock), failingRevocations{})
	token := issue(t, "u1", time.Hour)

	identity, err := gate.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u1", identity.UserID)

	assert.ErrorIs(t, gate.Revoke(context.Background(), token), utils.ErrStorageUnavailable)
}

func TestMemoryTokenBlacklistExpiry(t *testing.T) {
	clock := &utils.SteppingClock{Current: tokenEpoch, Step: time.Hour}
	blacklist := NewMemoryTokenBlacklist(clock)
	ctx := context.Background()

	require.NoError(t, blacklist.Revoke(ctx, "tok", tokenEpoch.Add(90*time.Minute)))

	revoked, err := blacklist.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, revoked, "checked at epoch")

	revoked, err = blacklist.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, revoked, "checked at epoch+1h")

	revoked, err = blacklist.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, revoked, "checked at epoch+2h")

	revoked, err = blacklist.IsRevoked(ctx, "other")
	require.NoError(t, err)
	assert.False(t, revoked)
}
