package recaptcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func newTestVerifier(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "v3-secret", "v2-secret", 0.5, time.Second, testLogger{})
}

func TestVerifyInvisible_OK(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "v3-secret", r.Form.Get("secret"))
		assert.Equal(t, "tok", r.Form.Get("response"))
		_, _ = w.Write([]byte(`{"success":true,"score":0.9,"action":"appointment_booking"}`))
	})

	err := verifier.VerifyInvisible(context.Background(), "tok", "appointment_booking")

	assert.NoError(t, err)
}

func TestVerifyInvisible_LowScore(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"score":0.1,"action":"appointment_booking"}`))
	})

	err := verifier.VerifyInvisible(context.Background(), "tok", "appointment_booking")

	assert.ErrorIs(t, err, ErrLowScore)
}

func TestVerifyInvisible_ActionMismatch(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"score":0.9,"action":"contact_form"}`))
	})

	err := verifier.VerifyInvisible(context.Background(), "tok", "appointment_booking")

	assert.ErrorIs(t, err, ErrActionMismatch)
}

func TestVerifyInvisible_InvalidToken(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
	})

	err := verifier.VerifyInvisible(context.Background(), "tok", "appointment_booking")

	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyVisible_UsesVisibleSecret(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "v2-secret", r.Form.Get("secret"))
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	assert.NoError(t, verifier.VerifyVisible(context.Background(), "tok"))
}

func TestVerify_EmptyToken(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for empty token")
	})

	assert.ErrorIs(t, verifier.VerifyVisible(context.Background(), ""), ErrTokenInvalid)
}

func TestVerify_ServiceUnavailable(t *testing.T) {
	verifier := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := verifier.VerifyInvisible(context.Background(), "tok", "appointment_booking")

	assert.ErrorIs(t, err, ErrVerifyUnavailable)
}
