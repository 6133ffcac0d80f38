package journal

import "errors"

var (
	// ErrAttemptNotFound is returned when the attempt does not exist
	ErrAttemptNotFound = errors.New("journal.repository: attempt not found")

	// ErrDuplicateAttempt is returned when an attempt ID is journaled twice
	ErrDuplicateAttempt = errors.New("journal.repository: attempt already journaled")

	// ErrInvalidStatus is returned on an attempt to store an unknown status
	ErrInvalidStatus = errors.New("journal.repository: invalid attempt status")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("journal.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("journal.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("journal.repository: failed to scan row")
)
