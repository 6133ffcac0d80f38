package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	journalRepo "github.com/HarsHvardhnn/centrum-booking-service/internal/infra/storage/journal"
	clinicClient "github.com/HarsHvardhnn/centrum-booking-service/internal/integrations/clinicapi"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/types"
)

type mockClinic struct {
	slots    []domain.Slot
	slotsErr error

	confirmation *clinicClient.BookingConfirmation
	bookErr      error

	bookCalls   int
	lastPayload clinicClient.BookingPayload
}

func (m *mockClinic) GetAvailableSlots(context.Context, string, time.Time) ([]domain.Slot, error) {
	return m.slots, m.slotsErr
}

func (m *mockClinic) BookAppointment(_ context.Context, payload clinicClient.BookingPayload) (*clinicClient.BookingConfirmation, error) {
	m.bookCalls++
	m.lastPayload = payload
	return m.confirmation, m.bookErr
}

type mockVerifier struct {
	invisibleErr error
	visibleErr   error
}

func (m *mockVerifier) VerifyInvisible(context.Context, string, string) error {
	return m.invisibleErr
}

func (m *mockVerifier) VerifyVisible(context.Context, string) error {
	return m.visibleErr
}

type mockJournal struct {
	pending *domain.BookingAttempt

	created   []*domain.BookingAttempt
	statuses  map[string]domain.AttemptStatus
	confirmed map[string]string
	failures  map[string]string
}

func newMockJournal() *mockJournal {
	return &mockJournal{
		statuses:  make(map[string]domain.AttemptStatus),
		confirmed: make(map[string]string),
		failures:  make(map[string]string),
	}
}

func (m *mockJournal) CreateAttempt(_ context.Context, attempt *domain.BookingAttempt) (*domain.BookingAttempt, error) {
	m.created = append(m.created, attempt)
	return attempt, nil
}

func (m *mockJournal) GetPendingBySlot(context.Context, string, time.Time, types.TimeString) (*domain.BookingAttempt, error) {
	if m.pending != nil {
		return m.pending, nil
	}
	return nil, journalRepo.ErrAttemptNotFound
}

func (m *mockJournal) SetStatus(_ context.Context, id string, status domain.AttemptStatus) error {
	m.statuses[id] = status
	return nil
}

func (m *mockJournal) SetConfirmed(_ context.Context, id string, reference string) error {
	m.statuses[id] = domain.AttemptConfirmed
	m.confirmed[id] = reference
	return nil
}

func (m *mockJournal) SetFailed(_ context.Context, id string, status domain.AttemptStatus, reason string) error {
	m.statuses[id] = status
	m.failures[id] = reason
	return nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type countingMetrics struct {
	outcomes map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{outcomes: make(map[string]int)}
}

func (m *countingMetrics) CountBookingOutcome(outcome string) {
	m.outcomes[outcome]++
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	clinic   *mockClinic
	verifier *mockVerifier
	journal  *mockJournal
	metrics  *countingMetrics
}

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	clinic := &mockClinic{
		slots: []domain.Slot{
			{StartTime: "09:00", EndTime: "09:30", Available: true},
			{StartTime: "09:30", EndTime: "10:00", Available: false},
		},
		confirmation: &clinicClient.BookingConfirmation{Reference: "REF-42"},
	}
	verifier := &mockVerifier{}
	journal := newMockJournal()
	metrics := newCountingMetrics()

	uc := NewUseCase(clinic, verifier, journal, passthroughTx{}, "", metrics, nopLogger{})
	uc.timeProvider = &fixedClock{now: testNow}

	return &fixture{uc: uc, clinic: clinic, verifier: verifier, journal: journal, metrics: metrics}
}

func validRequest() *Request {
	return &Request{
		DoctorID:   "doc-1",
		DoctorName: "Dr Nowak",
		Date:       time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		SlotStart:  "09:00",
		Form: domain.BookingForm{
			Name:                "Jan Kowalski",
			Phone:               "123 456 789",
			ConsultationType:    domain.ConsultationOffline,
			PrivacyPolicyAgreed: true,
		},
		InvisibleToken: "v3-token",
	}
}

func TestExecute_ConfirmsAndJournals(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.AttemptConfirmed, resp.Status)
	assert.Equal(t, "REF-42", resp.ConfirmationRef)
	assert.NotEmpty(t, resp.AttemptID)

	require.Equal(t, 1, f.clinic.bookCalls)
	payload := f.clinic.lastPayload
	assert.Equal(t, "+48123456789", payload.Phone)
	assert.Equal(t, "v3-token", payload.RecaptchaToken)
	assert.Equal(t, "2024-06-11", payload.Date)
	assert.Equal(t, "09:00", payload.Time)
	assert.True(t, payload.Consent)

	require.Len(t, f.journal.created, 1)
	attempt := f.journal.created[0]
	assert.Equal(t, "*******89", attempt.PhoneMasked)
	assert.Equal(t, domain.AttemptConfirmed, f.journal.statuses[attempt.ID])
	assert.Equal(t, "REF-42", f.journal.confirmed[attempt.ID])
	assert.Equal(t, 1, f.metrics.outcomes["confirmed"])
}

func TestExecute_FormInvalidStopsBeforeAnySideEffect(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Form.PrivacyPolicyAgreed = false

	_, err := f.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrValidationFailed)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "privacyPolicyAgreed")

	assert.Zero(t, f.clinic.bookCalls)
	assert.Empty(t, f.journal.created)
}

func TestExecute_SlotGoneInFreshAvailability(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.SlotStart = "11:00"

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, f.clinic.bookCalls)
	assert.Empty(t, f.journal.created)
}

func TestExecute_SlotNoLongerBookable(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.SlotStart = "09:30" // present but Available=false

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, f.clinic.bookCalls)
}

func TestExecute_PastSlotTodayRejected(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Date = testNow
	req.SlotStart = "09:00" // before the 12:00 clock

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, f.clinic.bookCalls)
}

func TestExecute_InvisibleRejectedDemandsVisible(t *testing.T) {
	f := newFixture()
	f.verifier.invisibleErr = errors.New("low score")

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrChallengePending)
	assert.Zero(t, f.clinic.bookCalls)
	assert.Empty(t, f.journal.created)
	assert.Equal(t, 1, f.metrics.outcomes["challenge_pending"])
}

func TestExecute_VisibleTokenTakesPrecedence(t *testing.T) {
	f := newFixture()
	f.verifier.invisibleErr = errors.New("low score")
	req := validRequest()
	req.VisibleToken = "v2-token"

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.AttemptConfirmed, resp.Status)
	assert.Equal(t, "v2-token", f.clinic.lastPayload.RecaptchaToken)
}

func TestExecute_DuplicateSubmissionInFlight(t *testing.T) {
	f := newFixture()
	f.journal.pending = &domain.BookingAttempt{ID: "earlier", Status: domain.AttemptReceived}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Zero(t, f.clinic.bookCalls)
	assert.Empty(t, f.journal.created)
}

func TestExecute_UpstreamSlotTaken(t *testing.T) {
	f := newFixture()
	f.clinic.confirmation = nil
	f.clinic.bookErr = clinicClient.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrSlotTaken)
	require.Len(t, f.journal.created, 1)
	assert.Equal(t, domain.AttemptRejected, f.journal.statuses[f.journal.created[0].ID])
	assert.Equal(t, 1, f.clinic.bookCalls)
}

func TestExecute_UpstreamTokenRejectedReArmsChallenge(t *testing.T) {
	f := newFixture()
	f.clinic.confirmation = nil
	f.clinic.bookErr = clinicClient.ErrTokenRejected

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrChallengePending)
	require.Len(t, f.journal.created, 1)
	assert.Equal(t, domain.AttemptChallengePending, f.journal.statuses[f.journal.created[0].ID])
}

func TestExecute_UpstreamUnavailable(t *testing.T) {
	f := newFixture()
	f.clinic.confirmation = nil
	f.clinic.bookErr = clinicClient.ErrUpstreamUnavailable

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrUpstreamFailed)
	require.Len(t, f.journal.created, 1)
	assert.Equal(t, domain.AttemptUpstreamFailed, f.journal.statuses[f.journal.created[0].ID])
}

func TestExecute_DoctorNotFound(t *testing.T) {
	f := newFixture()
	f.clinic.slotsErr = clinicClient.ErrDoctorNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.Zero(t, f.clinic.bookCalls)
}

func TestExecute_ValidatesRequest(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
