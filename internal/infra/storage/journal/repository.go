package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/dbmetrics"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/psqlbuilder"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/types"
)

// pq error code for unique_violation.
const pqUniqueViolation = "23505"

// Repository persists the booking attempt journal.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the journal repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var attemptColumns = []string{
	"id",
	"doctor_id",
	"booking_date",
	"slot_start",
	"consultation_type",
	"patient_name",
	"phone_masked",
	"status",
	"confirmation_ref",
	"failure_reason",
	"created_at",
	"updated_at",
}

// CreateAttempt journals a new submission attempt. If the context
// carries an open transaction the insert joins it.
func (r *Repository) CreateAttempt(ctx context.Context, attempt *domain.BookingAttempt) (*domain.BookingAttempt, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if !attempt.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, attempt.Status)
	}

	query, args, err := psqlbuilder.Insert("booking_attempts").
		Columns(
			"id",
			"doctor_id",
			"booking_date",
			"slot_start",
			"consultation_type",
			"patient_name",
			"phone_masked",
			"status",
		).
		Values(
			attempt.ID,
			attempt.DoctorID,
			attempt.Date,
			attempt.SlotStart,
			attempt.ConsultationType,
			attempt.PatientName,
			attempt.PhoneMasked,
			attempt.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateAttempt - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, fmt.Errorf("%w: id=%s", ErrDuplicateAttempt, attempt.ID)
		}
		return nil, fmt.Errorf("%w: CreateAttempt - execute insert: %v", ErrExecQuery, err)
	}

	attempt.CreatedAt = createdAt.Time
	attempt.UpdatedAt = updatedAt.Time

	return attempt, nil
}

// SetStatus updates the lifecycle status of an attempt.
func (r *Repository) SetStatus(ctx context.Context, id string, status domain.AttemptStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return r.update(ctx, id, psqlbuilder.Update("booking_attempts").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}), "SetStatus")
}

// SetConfirmed marks the attempt confirmed with the upstream reference.
func (r *Repository) SetConfirmed(ctx context.Context, id string, reference string) error {
	return r.update(ctx, id, psqlbuilder.Update("booking_attempts").
		Set("status", domain.AttemptConfirmed).
		Set("confirmation_ref", reference).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}), "SetConfirmed")
}

// SetFailed marks the attempt finished in a failure state with a reason.
func (r *Repository) SetFailed(ctx context.Context, id string, status domain.AttemptStatus, reason string) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return r.update(ctx, id, psqlbuilder.Update("booking_attempts").
		Set("status", status).
		Set("failure_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}), "SetFailed")
}

func (r *Repository) update(ctx context.Context, id string, builder squirrel.UpdateBuilder, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id=%s", ErrAttemptNotFound, id)
	}

	return nil
}

// GetPendingBySlot returns the newest non-terminal attempt journaled
// for the given doctor+date+slot, or ErrAttemptNotFound. Called inside
// a serializable transaction to keep double submissions out.
func (r *Repository) GetPendingBySlot(ctx context.Context, doctorID string, date time.Time, slotStart types.TimeString) (*domain.BookingAttempt, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(attemptColumns...).
		From("booking_attempts").
		Where(squirrel.Eq{
			"doctor_id":    doctorID,
			"booking_date": date,
			"slot_start":   slotStart,
			"status":       []domain.AttemptStatus{domain.AttemptReceived, domain.AttemptChallengePending},
		}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPendingBySlot - build select query: %v", ErrBuildQuery, err)
	}

	attempt, err := scanAttempt(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: doctor=%s date=%s slot=%s", ErrAttemptNotFound,
			doctorID, date.Format(domain.DateFormat), slotStart)
	}
	if err != nil {
		return nil, err
	}

	return attempt, nil
}

// GetByID fetches one journaled attempt.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.BookingAttempt, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(attemptColumns...).
		From("booking_attempts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	attempt, err := scanAttempt(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id=%s", ErrAttemptNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	return attempt, nil
}

// ListRecentByDoctor returns the newest attempts for a doctor, newest
// first. Used by reception reconciliation.
func (r *Repository) ListRecentByDoctor(ctx context.Context, doctorID string, limit uint64) ([]*domain.BookingAttempt, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(attemptColumns...).
		From("booking_attempts").
		Where(squirrel.Eq{"doctor_id": doctorID}).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecentByDoctor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecentByDoctor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	attempts := make([]*domain.BookingAttempt, 0)
	for rows.Next() {
		attempt, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecentByDoctor - rows error: %v", ErrScanRow, err)
	}

	return attempts, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAttempt(row rowScanner) (*domain.BookingAttempt, error) {
	var attempt domain.BookingAttempt
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&attempt.ID,
		&attempt.DoctorID,
		&attempt.Date,
		&attempt.SlotStart,
		&attempt.ConsultationType,
		&attempt.PatientName,
		&attempt.PhoneMasked,
		&attempt.Status,
		&attempt.ConfirmationRef,
		&attempt.FailureReason,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan attempt: %v", ErrScanRow, err)
	}

	attempt.CreatedAt = createdAt.Time
	attempt.UpdatedAt = updatedAt.Time

	return &attempt, nil
}
