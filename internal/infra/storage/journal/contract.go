package journal

import (
	"context"
	"database/sql"

	"github.com/HarsHvardhnn/centrum-booking-service/pkg/dbmetrics"
)

// Executor interfaces are shared with the instrumented DB wrapper.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions; satisfied by *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
