package challenge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockInvisibleProvider struct {
	token string
	err   error
	calls int
}

func (m *mockInvisibleProvider) Execute(_ context.Context, _ string) (string, error) {
	m.calls++
	return m.token, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func TestGetToken_InvisibleTierSucceeds(t *testing.T) {
	provider := &mockInvisibleProvider{token: "v3-token"}
	c := NewController(provider, "appointment_booking", nopLogger{})

	token, err := c.GetToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v3-token", token)
	assert.Equal(t, 1, provider.calls)
	// Single-use: the machine returned to Idle for the next attempt.
	assert.Equal(t, StateIdle, c.State())
}

func TestGetToken_InvisibleFailureFallsBackToVisible(t *testing.T) {
	provider := &mockInvisibleProvider{err: errors.New("low score")}
	c := NewController(provider, "appointment_booking", nopLogger{})

	token, err := c.GetToken(context.Background())

	assert.ErrorIs(t, err, ErrChallengeIncomplete)
	assert.Empty(t, token)
	assert.Equal(t, StateAwaitingVisibleProof, c.State())

	// Still incomplete until the widget supplies a token; the invisible
	// tier is not retried.
	_, err = c.GetToken(context.Background())
	assert.ErrorIs(t, err, ErrChallengeIncomplete)
	assert.Equal(t, 1, provider.calls)
}

func TestGetToken_VisibleTokenResolvesExactlyOnce(t *testing.T) {
	provider := &mockInvisibleProvider{err: errors.New("service unavailable")}
	c := NewController(provider, "appointment_booking", nopLogger{})

	_, err := c.GetToken(context.Background())
	require.ErrorIs(t, err, ErrChallengeIncomplete)

	require.NoError(t, c.SupplyVisibleToken("v2-token"))

	token, err := c.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v2-token", token)

	// Consumed: the next attempt needs fresh widget proof.
	_, err = c.GetToken(context.Background())
	assert.ErrorIs(t, err, ErrChallengeIncomplete)
	assert.Equal(t, StateAwaitingVisibleProof, c.State())
}

func TestSupplyVisibleToken_RejectedOutsideVisibleTier(t *testing.T) {
	c := NewController(&mockInvisibleProvider{token: "ok"}, "appointment_booking", nopLogger{})

	assert.ErrorIs(t, c.SupplyVisibleToken("v2-token"), ErrNotAwaitingVisible)
}

func TestSupplyVisibleToken_EmptyTokenRejected(t *testing.T) {
	c := NewController(&mockInvisibleProvider{err: errors.New("down")}, "appointment_booking", nopLogger{})
	_, _ = c.GetToken(context.Background())

	assert.ErrorIs(t, c.SupplyVisibleToken(""), ErrInvalidToken)
	assert.Equal(t, StateAwaitingVisibleProof, c.State())
}

func TestVisibleFailed_InvalidatesCachedToken(t *testing.T) {
	provider := &mockInvisibleProvider{err: errors.New("down")}
	c := NewController(provider, "appointment_booking", nopLogger{})

	_, _ = c.GetToken(context.Background())
	require.NoError(t, c.SupplyVisibleToken("v2-token"))

	// Widget expired before submission consumed the token.
	c.VisibleFailed()

	_, err := c.GetToken(context.Background())
	assert.ErrorIs(t, err, ErrChallengeIncomplete)

	// Recovery: a new widget pass works.
	require.NoError(t, c.SupplyVisibleToken("v2-token-2"))
	token, err := c.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v2-token-2", token)
}

func TestForceVisible_AfterUpstreamTokenRejection(t *testing.T) {
	provider := &mockInvisibleProvider{token: "v3-token"}
	c := NewController(provider, "appointment_booking", nopLogger{})

	token, err := c.GetToken(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Upstream rejected the proof as low-trust.
	c.ForceVisible()

	_, err = c.GetToken(context.Background())
	assert.ErrorIs(t, err, ErrChallengeIncomplete)
	assert.Equal(t, StateAwaitingVisibleProof, c.State())
}

func TestReset_RestartsWithInvisibleTier(t *testing.T) {
	provider := &mockInvisibleProvider{err: errors.New("down")}
	c := NewController(provider, "appointment_booking", nopLogger{})

	_, _ = c.GetToken(context.Background())
	require.Equal(t, StateAwaitingVisibleProof, c.State())

	provider.err = nil
	provider.token = "v3-token"
	c.Reset()

	token, err := c.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v3-token", token)
	assert.Equal(t, 2, provider.calls)
}
