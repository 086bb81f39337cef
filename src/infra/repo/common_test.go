package repo

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"staffrecords/src/core/domain"
	"staffrecords/src/infra/logger"
)

var (
	departmentColumns = []string{"id", "name"}
	employeeColumns   = []string{"id", "name", "job_title", "department_id"}
	reviewColumns     = []string{"id", "year", "summary", "employee_id"}
)

// newMock returns a pgxmock connection that must have met every expectation
// by the end of the test.
func newMock(t *testing.T) pgxmock.PgxConnIface {
	t.Helper()
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = mock.Close(context.Background())
	})
	return mock
}

// knownIDs resolves only the listed ids without touching the store.
func knownIDs(ids ...int64) domain.Resolver {
	return domain.ResolverFunc(func(_ context.Context, id int64) (bool, error) {
		for _, known := range ids {
			if known == id {
				return true, nil
			}
		}
		return false, nil
	})
}

var testLog = logger.Discard()
