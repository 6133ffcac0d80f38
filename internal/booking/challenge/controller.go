// Package challenge orchestrates the two-tier bot challenge: the
// invisible background proof runs first, with the interactive widget
// as fallback when it fails or scores too low.
package challenge

import "context"

// State of the challenge state machine.
type State string

const (
	StateIdle                 State = "idle"
	StateAwaitingInvisible    State = "awaiting_invisible_proof"
	StateInvisibleFailed      State = "invisible_failed"
	StateAwaitingVisibleProof State = "awaiting_visible_proof"
	StateProven               State = "proven"
)

// tokenTier records which tier produced the cached token, which decides
// where the machine returns after the token is consumed.
type tokenTier int

const (
	tierNone tokenTier = iota
	tierInvisible
	tierVisible
)

// Controller drives the challenge for one booking attempt. GetToken is
// the single operation the submitter calls; everything else feeds the
// machine from the widget callbacks. Not safe for concurrent use.
type Controller struct {
	provider  InvisibleProvider
	actionTag string
	logger    Logger

	state State
	token string
	tier  tokenTier
}

// NewController creates a controller in the Idle state. The action tag
// is configuration, forwarded verbatim to the invisible provider.
func NewController(provider InvisibleProvider, actionTag string, logger Logger) *Controller {
	return &Controller{
		provider:  provider,
		actionTag: actionTag,
		logger:    logger,
		state:     StateIdle,
	}
}

// State returns the current machine state.
func (c *Controller) State() State {
	return c.state
}

// GetToken resolves a usable proof token or reports that the challenge
// is incomplete. Tokens are single-use: a returned token is consumed,
// and the next call needs a fresh proof.
//
// From Idle the invisible tier runs once; on failure the machine moves
// to AwaitingVisibleProof and the caller must surface the widget.
func (c *Controller) GetToken(ctx context.Context) (string, error) {
	switch c.state {
	case StateProven:
		return c.consume(), nil

	case StateIdle:
		c.state = StateAwaitingInvisible
		token, err := c.provider.Execute(ctx, c.actionTag)
		if err != nil || token == "" {
			c.logger.Warn("challenge: invisible tier failed (action=%s): %v", c.actionTag, err)
			c.state = StateInvisibleFailed
			c.fallBackToVisible()
			return "", ErrChallengeIncomplete
		}
		c.logger.Info("challenge: invisible tier proven (action=%s)", c.actionTag)
		c.token = token
		c.tier = tierInvisible
		c.state = StateProven
		return c.consume(), nil

	case StateAwaitingVisibleProof, StateAwaitingInvisible, StateInvisibleFailed:
		return "", ErrChallengeIncomplete

	default:
		return "", ErrChallengeIncomplete
	}
}

// SupplyVisibleToken accepts the proof produced by the interactive
// widget. Valid only while the visible tier is active.
func (c *Controller) SupplyVisibleToken(token string) error {
	if c.state != StateAwaitingVisibleProof {
		return ErrNotAwaitingVisible
	}
	if token == "" {
		return ErrInvalidToken
	}
	c.logger.Info("challenge: visible tier proven")
	c.token = token
	c.tier = tierVisible
	c.state = StateProven
	return nil
}

// VisibleFailed reports widget expiry or error: any cached token is
// invalidated and the user must retry the widget.
func (c *Controller) VisibleFailed() {
	c.logger.Warn("challenge: visible tier failed or expired")
	c.dropToken()
	c.state = StateAwaitingVisibleProof
}

// ForceVisible invalidates any cached token and demands interactive
// proof. Used when the booking endpoint rejects a token as low-trust.
func (c *Controller) ForceVisible() {
	c.dropToken()
	c.state = StateAwaitingVisibleProof
}

// Reset returns the machine to Idle so a new attempt starts with the
// invisible tier again.
func (c *Controller) Reset() {
	c.dropToken()
	c.state = StateIdle
}

// consume hands out the cached token exactly once. After consumption an
// invisible-sourced machine returns to Idle (the next attempt re-runs
// the background proof) while a visible-sourced one awaits the widget.
func (c *Controller) consume() string {
	token := c.token
	fromVisible := c.tier == tierVisible
	c.dropToken()
	if fromVisible {
		c.state = StateAwaitingVisibleProof
	} else {
		c.state = StateIdle
	}
	return token
}

func (c *Controller) fallBackToVisible() {
	c.dropToken()
	c.state = StateAwaitingVisibleProof
}

func (c *Controller) dropToken() {
	c.token = ""
	c.tier = tierNone
}
