package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voice-notes/internal/config"
	"github.com/MKhiriev/voice-notes/internal/logger"
)

const (
	testUserID = "0190c4c2-7d1e-7000-8000-000000000001"
	testNoteID = "0190c4c2-7d1e-7000-8000-0000000000a1"
	testTodoID = "0190c4c2-7d1e-7000-8000-0000000000b1"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestDB wires a postgres-flavoured *DB over sqlmock.
func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	return &DB{
		DB:                 conn,
		driver:             config.DriverPostgres,
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func noteRows() *sqlmock.Rows {
	return sqlmock.NewRows(noteColumns)
}

func todoRows() *sqlmock.Rows {
	return sqlmock.NewRows(todoColumns)
}

func nullTimeValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
