package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"tonotes/metrics"
	"tonotes/model"
	"tonotes/utils"
)

// AccessGate turns a bearer credential into an identity. Every way a
// credential can fail surfaces as utils.ErrUnauthorized.
type AccessGate struct {
	Verifier    IdentityVerifier
	Revocations TokenRevocations
}

func NewAccessGate(verifier IdentityVerifier, revocations TokenRevocations) *AccessGate {
	return &AccessGate{Verifier: verifier, Revocations: revocations}
}

func (g *AccessGate) Resolve(ctx context.Context, token string) (model.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return g.reject(&VerifyError{Kind: FailureInvalid, Err: errors.New("missing token")})
	}

	identity, err := g.Verifier.Verify(ctx, token)
	if err != nil {
		return g.reject(err)
	}

	if g.Revocations != nil {
		revoked, err := g.Revocations.IsRevoked(ctx, token)
		if err != nil {
			// fail open
			log.Printf("token revocation lookup failed: %v", err)
		} else if revoked {
			return g.reject(&VerifyError{Kind: FailureRevoked, Err: errors.New("token was revoked")})
		}
	}

	metrics.TrackAuthAttempt("success", "ok")
	return identity, nil
}

func (g *AccessGate) reject(err error) (model.Identity, error) {
	kind := FailureUnknown
	var verr *VerifyError
	if errors.As(err, &verr) {
		kind = verr.Kind
	}
	log.Printf("access denied (%s): %v", kind, err)
	metrics.TrackAuthAttempt("failure", kind.String())
	return model.Identity{}, utils.ErrUnauthorized.With(err)
}

// Revoke blacklists a token that currently resolves.
func (g *AccessGate) Revoke(ctx context.Context, token string) error {
	identity, err := g.Resolve(ctx, token)
	if err != nil {
		return err
	}
	if g.Revocations == nil {
		return utils.ErrStorageUnavailable.With(errors.New("token revocation is not configured"))
	}
	until := identity.ExpiresAt
	if until.IsZero() {
		until = time.Now().Add(24 * time.Hour)
	}
	if err := g.Revocations.Revoke(ctx, strings.TrimSpace(token), until); err != nil {
		log.Printf("token revocation failed: %v", err)
		return utils.ErrStorageUnavailable.With(err)
	}
	return nil
}

// MemoryTokenBlacklist is a process-local TokenRevocations for single
// instance deployments without Redis.
type MemoryTokenBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	Clock   utils.Clock
}

func NewMemoryTokenBlacklist(clock utils.Clock) *MemoryTokenBlacklist {
	if clock == nil {
		clock = utils.RealClock{}
	}
	return &MemoryTokenBlacklist{revoked: make(map[string]time.Time), Clock: clock}
}

func (m *MemoryTokenBlacklist) Revoke(_ context.Context, token string, until time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[blacklistKey(token)] = until
	return nil
}

func (m *MemoryTokenBlacklist) IsRevoked(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := blacklistKey(token)
	until, ok := m.revoked[key]
	if !ok {
		return false, nil
	}
	if !m.Clock.Now().Before(until) {
		delete(m.revoked, key)
		return false, nil
	}
	return true, nil
}
