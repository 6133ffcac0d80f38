package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/booking/challenge"
	"github.com/HarsHvardhnn/centrum-booking-service/internal/booking/form"
	"github.com/HarsHvardhnn/centrum-booking-service/internal/booking/selection"
	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	journalRepo "github.com/HarsHvardhnn/centrum-booking-service/internal/infra/storage/journal"
	clinicClient "github.com/HarsHvardhnn/centrum-booking-service/internal/integrations/clinicapi"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/types"
)

// UseCase submits one booking to the clinic API on the patient's
// behalf: form validation, a fresh availability check, server-side
// challenge verification, the journal write and a single upstream call.
type UseCase struct {
	clinicClient    ClinicClient
	verifier        ChallengeVerifier
	journal         AttemptJournal
	txManager       TransactionManager
	challengeAction string
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger
}

// NewUseCase creates the use case. An empty challengeAction selects the
// default action tag.
func NewUseCase(
	client ClinicClient,
	verifier ChallengeVerifier,
	journal AttemptJournal,
	txManager TransactionManager,
	challengeAction string,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if challengeAction == "" {
		challengeAction = domain.DefaultChallengeAction
	}
	return &UseCase{
		clinicClient:    client,
		verifier:        verifier,
		journal:         journal,
		txManager:       txManager,
		challengeAction: challengeAction,
		timeProvider:    &RealTimeProvider{},
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute runs the submission. The upstream booking call is issued at
// most once per Execute; every outcome is journaled.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: doctor=%s date=%s slot=%s type=%s",
		req.DoctorID, req.Date.Format(domain.DateFormat), req.SlotStart, req.Form.ConsultationType)

	// 1. Request shape.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Form validation, all failures collected.
	if errs := form.Validate(req.Form); !errs.Valid() {
		uc.logger.Warn("SubmitBooking: form invalid, %d field(s)", len(errs))
		uc.metrics.CountBookingOutcome("form_invalid")
		return nil, &ValidationError{Fields: errs}
	}

	now := uc.timeProvider.Now()

	// 3. Rebuild the selection against fresh availability, so a slot
	// that was taken while the form was being filled is caught before
	// the upstream call.
	if err := uc.checkSlotStillBookable(ctx, req, now); err != nil {
		return nil, err
	}

	// 4. Challenge resolution. The token is consumed by the upstream
	// call; an unresolved challenge stops the submission here.
	token, err := uc.resolveChallenge(ctx, req)
	if err != nil {
		uc.metrics.CountBookingOutcome("challenge_pending")
		return nil, err
	}

	// 5. Journal the attempt. The duplicate guard and the insert share
	// a serializable transaction, so a double-click cannot journal the
	// same slot twice.
	attempt := &domain.BookingAttempt{
		ID:               uuid.New().String(),
		DoctorID:         req.DoctorID,
		Date:             truncateToDay(req.Date),
		SlotStart:        req.SlotStart,
		ConsultationType: req.Form.ConsultationType,
		PatientName:      req.Form.Name,
		PhoneMasked:      form.MaskPhone(form.NormalizePhone(req.Form.Phone)),
		Status:           domain.AttemptReceived,
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		_, err := uc.journal.GetPendingBySlot(txCtx, req.DoctorID, attempt.Date, req.SlotStart)
		if err == nil {
			return ErrSubmissionInFlight
		}
		if !errors.Is(err, journalRepo.ErrAttemptNotFound) {
			return fmt.Errorf("%w: failed to check pending attempts: %v", ErrInternal, err)
		}

		if _, err := uc.journal.CreateAttempt(txCtx, attempt); err != nil {
			return fmt.Errorf("%w: failed to journal attempt: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSubmissionInFlight) {
			uc.logger.Warn("SubmitBooking: duplicate submission for doctor=%s date=%s slot=%s",
				req.DoctorID, attempt.Date.Format(domain.DateFormat), req.SlotStart)
			uc.metrics.CountBookingOutcome("duplicate")
			return nil, ErrSubmissionInFlight
		}
		uc.logger.Error("SubmitBooking: journal transaction failed: %v", err)
		return nil, err
	}

	// 6. The single upstream call.
	confirmation, err := uc.clinicClient.BookAppointment(ctx, uc.buildPayload(req, token))
	return uc.finishAttempt(ctx, attempt, confirmation, err)
}

// checkSlotStillBookable replays the selection transitions against
// availability fetched now. The same rules apply as in the calendar:
// past days have no bookable slots and today's already-started slots
// are gone.
func (uc *UseCase) checkSlotStillBookable(ctx context.Context, req *Request, now time.Time) error {
	if truncateToDay(req.Date).Before(truncateToDay(now)) {
		uc.logger.Warn("SubmitBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return ErrSlotNotAvailable
	}
	if sameDay(req.Date, now) && req.SlotStart.IsBefore(types.NewTimeString(now)) {
		uc.logger.Warn("SubmitBooking: slot %s already started", req.SlotStart)
		return ErrSlotNotAvailable
	}

	slots, err := uc.clinicClient.GetAvailableSlots(ctx, req.DoctorID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, clinicClient.ErrDoctorNotFound):
			uc.logger.Warn("SubmitBooking: doctor=%s not found", req.DoctorID)
			return ErrDoctorNotFound
		case errors.Is(err, clinicClient.ErrUpstreamUnavailable):
			uc.logger.Error("SubmitBooking: availability check failed, upstream unavailable: %v", err)
			uc.metrics.CountBookingOutcome("upstream_failed")
			return ErrUpstreamFailed
		default:
			uc.logger.Error("SubmitBooking: availability check failed: %v", err)
			return fmt.Errorf("%w: failed to refresh availability: %v", ErrInternal, err)
		}
	}

	sel := selection.New()
	doctor := domain.Doctor{ID: req.DoctorID, Name: req.DoctorName}
	if err := sel.Hydrate(doctor, req.Date, req.SlotStart, slots); err != nil {
		uc.logger.Warn("SubmitBooking: slot %s no longer bookable: %v", req.SlotStart, err)
		uc.metrics.CountBookingOutcome("slot_gone")
		return ErrSlotNotAvailable
	}

	return nil
}

// resolveChallenge verifies the browser-supplied proofs and hands back
// the token to forward upstream. A visible-tier proof, when present,
// takes precedence; otherwise the invisible tier is verified through
// the controller.
func (uc *UseCase) resolveChallenge(ctx context.Context, req *Request) (string, error) {
	ctrl := challenge.NewController(
		&invisibleProvider{verifier: uc.verifier, token: req.InvisibleToken},
		uc.challengeAction,
		uc.logger,
	)

	if req.VisibleToken != "" {
		if err := uc.verifier.VerifyVisible(ctx, req.VisibleToken); err != nil {
			uc.logger.Warn("SubmitBooking: visible challenge proof rejected: %v", err)
			return "", ErrChallengePending
		}
		ctrl.ForceVisible()
		if err := ctrl.SupplyVisibleToken(req.VisibleToken); err != nil {
			return "", ErrChallengePending
		}
		return ctrl.GetToken(ctx)
	}

	token, err := ctrl.GetToken(ctx)
	if err != nil {
		uc.logger.Warn("SubmitBooking: invisible challenge unresolved, visible tier required")
		return "", ErrChallengePending
	}
	return token, nil
}

// finishAttempt journals the upstream outcome and maps it to the
// usecase result. Journal write failures after a confirmed booking are
// logged, not surfaced: the appointment exists regardless.
func (uc *UseCase) finishAttempt(ctx context.Context, attempt *domain.BookingAttempt, confirmation *clinicClient.BookingConfirmation, bookErr error) (*Response, error) {
	if bookErr == nil {
		if err := uc.journal.SetConfirmed(ctx, attempt.ID, confirmation.Reference); err != nil {
			uc.logger.Error("SubmitBooking: failed to journal confirmation for attempt=%s: %v", attempt.ID, err)
		}
		uc.metrics.CountBookingOutcome("confirmed")
		uc.logger.Info("SubmitBooking: confirmed attempt=%s ref=%s", attempt.ID, confirmation.Reference)
		return &Response{
			AttemptID:       attempt.ID,
			ConfirmationRef: confirmation.Reference,
			Status:          domain.AttemptConfirmed,
		}, nil
	}

	switch {
	case errors.Is(bookErr, clinicClient.ErrSlotTaken):
		uc.journalFailure(ctx, attempt.ID, domain.AttemptRejected, "slot taken upstream")
		uc.metrics.CountBookingOutcome("slot_taken")
		return nil, ErrSlotTaken

	case errors.Is(bookErr, clinicClient.ErrTokenRejected):
		// The upstream distrusts the proof; the client must solve the
		// interactive widget and resubmit.
		if err := uc.journal.SetStatus(ctx, attempt.ID, domain.AttemptChallengePending); err != nil {
			uc.logger.Error("SubmitBooking: failed to journal challenge_pending for attempt=%s: %v", attempt.ID, err)
		}
		uc.metrics.CountBookingOutcome("challenge_pending")
		return nil, ErrChallengePending

	case errors.Is(bookErr, clinicClient.ErrUpstreamValidation):
		uc.journalFailure(ctx, attempt.ID, domain.AttemptRejected, bookErr.Error())
		uc.metrics.CountBookingOutcome("rejected")
		return nil, fmt.Errorf("%w: upstream rejected the booking: %v", ErrValidationFailed, bookErr)

	case errors.Is(bookErr, clinicClient.ErrUpstreamUnavailable):
		uc.journalFailure(ctx, attempt.ID, domain.AttemptUpstreamFailed, bookErr.Error())
		uc.metrics.CountBookingOutcome("upstream_failed")
		return nil, ErrUpstreamFailed

	default:
		uc.journalFailure(ctx, attempt.ID, domain.AttemptUpstreamFailed, bookErr.Error())
		uc.metrics.CountBookingOutcome("error")
		return nil, fmt.Errorf("%w: booking call failed: %v", ErrInternal, bookErr)
	}
}

func (uc *UseCase) journalFailure(ctx context.Context, attemptID string, status domain.AttemptStatus, reason string) {
	if err := uc.journal.SetFailed(ctx, attemptID, status, reason); err != nil {
		uc.logger.Error("SubmitBooking: failed to journal outcome for attempt=%s: %v", attemptID, err)
	}
}

func (uc *UseCase) buildPayload(req *Request, token string) clinicClient.BookingPayload {
	phone := form.InternationalPhone(form.NormalizePhone(req.Form.Phone))

	return clinicClient.BookingPayload{
		Date:             req.Date.Format(domain.DateFormat),
		Doctor:           req.DoctorID,
		Time:             req.SlotStart.String(),
		ConsultationType: string(req.Form.ConsultationType),
		Name:             req.Form.Name,
		Phone:            phone,
		Email:            req.Form.Email,
		Gender:           req.Form.Gender,
		Message:          req.Form.Message,
		RecaptchaToken:   token,

		PrivacyPolicyAgreed:         req.Form.PrivacyPolicyAgreed,
		SMSConsentAgreed:            req.Form.SMSConsentAgreed,
		MedicalDataProcessingAgreed: req.Form.MedicalDataProcessingAgreed,
		TeleportationConfirmed:      req.Form.TeleconsultationConfirmed,
		ContactConsentAgreed:        req.Form.ContactConsentAgreed,

		GovtID:      req.Form.GovtID,
		Address:     req.Form.Address,
		DateOfBirth: req.Form.DateOfBirth,

		Consent: true,
	}
}

// invisibleProvider adapts the server-side verifier to the challenge
// controller: the browser-minted token is the proof, verified with the
// configured action tag.
type invisibleProvider struct {
	verifier ChallengeVerifier
	token    string
}

func (p *invisibleProvider) Execute(ctx context.Context, actionTag string) (string, error) {
	if p.token == "" {
		return "", errors.New("no invisible proof supplied")
	}
	if err := p.verifier.VerifyInvisible(ctx, p.token, actionTag); err != nil {
		return "", err
	}
	return p.token, nil
}
