// Package recaptcha verifies browser-issued challenge tokens against
// the vendor's siteverify endpoint: score-based (v3) tokens for the
// invisible tier and checkbox (v2) tokens for the visible fallback.
package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultVerifyURL is the vendor's verification endpoint.
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// verifyResponse is the siteverify wire format.
type verifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"` // v3 only
	Action     string   `json:"action"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// Client verifies challenge tokens. Two secrets are held because the
// invisible and visible tiers are separate site registrations.
type Client struct {
	verifyURL      string
	invisibleKey   string
	visibleKey     string
	scoreThreshold float64
	httpClient     *http.Client
	log            Logger
}

// NewClient creates a verifier. An empty verifyURL selects the vendor
// default.
func NewClient(verifyURL, invisibleKey, visibleKey string, scoreThreshold float64, timeout time.Duration, log Logger) *Client {
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	return &Client{
		verifyURL:      verifyURL,
		invisibleKey:   invisibleKey,
		visibleKey:     visibleKey,
		scoreThreshold: scoreThreshold,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// VerifyInvisible validates a score-based token: it must verify, carry
// the expected action tag and meet the score threshold.
func (c *Client) VerifyInvisible(ctx context.Context, token, expectedAction string) error {
	result, err := c.verify(ctx, c.invisibleKey, token)
	if err != nil {
		return err
	}

	if !result.Success {
		c.log.Warn("VerifyInvisible: token rejected: %v", result.ErrorCodes)
		return fmt.Errorf("%w: %s", ErrTokenInvalid, strings.Join(result.ErrorCodes, ","))
	}
	if expectedAction != "" && result.Action != expectedAction {
		c.log.Warn("VerifyInvisible: action mismatch: got=%s want=%s", result.Action, expectedAction)
		return fmt.Errorf("%w: got %q", ErrActionMismatch, result.Action)
	}
	if result.Score < c.scoreThreshold {
		c.log.Warn("VerifyInvisible: score %.2f below threshold %.2f", result.Score, c.scoreThreshold)
		return fmt.Errorf("%w: score %.2f", ErrLowScore, result.Score)
	}

	return nil
}

// VerifyVisible validates an interactive-widget token.
func (c *Client) VerifyVisible(ctx context.Context, token string) error {
	result, err := c.verify(ctx, c.visibleKey, token)
	if err != nil {
		return err
	}
	if !result.Success {
		c.log.Warn("VerifyVisible: token rejected: %v", result.ErrorCodes)
		return fmt.Errorf("%w: %s", ErrTokenInvalid, strings.Join(result.ErrorCodes, ","))
	}
	return nil
}

func (c *Client) verify(ctx context.Context, secret, token string) (*verifyResponse, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrTokenInvalid)
	}

	form := url.Values{}
	form.Set("secret", secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("recaptcha verify: transport failure: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrVerifyUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrVerifyUnavailable, resp.StatusCode)
	}

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrVerifyUnavailable, err)
	}

	return &result, nil
}
