package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/project/lending/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func initLinksTest(t *testing.T, table string) (context.Context, pgxmock.PgxPoolIface, *linkRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	logger, err := zap.NewProduction()
	require.NoError(t, err)

	return context.Background(), mock, NewLinks(logger, mock, table)
}

func initLoansTest(t *testing.T) (context.Context, pgxmock.PgxPoolIface, *loansRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	logger, err := zap.NewProduction()
	require.NoError(t, err)

	return context.Background(), mock, NewLoans(logger, mock)
}

func testLoan(id int64) entity.Loan {
	getAt := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	return entity.Loan{
		ID:           id,
		UserID:       42,
		BookID:       7,
		GetAt:        getAt,
		MustReturnAt: getAt.AddDate(0, 0, 14),
	}
}

func loanRows(loans ...entity.Loan) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "left_id", "right_id", "get_at", "must_return_at", "returned_at", "returned",
	})
	for _, l := range loans {
		rows.AddRow(l.ID, l.UserID, l.BookID, l.GetAt, l.MustReturnAt, l.ReturnedAt, l.Returned)
	}
	return rows
}

func Test_linkRepository_CreateLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		txL        txLayer
		rows       int64
		errDB      error
		errRequire error
	}{
		{
			name:       "ok with transaction",
			txL:        extract,
			rows:       1,
			errRequire: nil,
		},

		{
			name:       "duplicate pair is absorbed",
			txL:        none,
			rows:       0,
			errRequire: nil,
		},

		{
			name:       "dangling reference becomes a typed absence",
			txL:        none,
			errDB:      &pgconn.PgError{Code: errForeignKeyViolation},
			errRequire: entity.ErrNotFound,
		},

		{
			name:       "err in exec",
			txL:        none,
			errDB:      errInternal,
			errRequire: errInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initLinksTest(t, TableAuthorBook)
			tErr := tt.errRequire

			if tt.txL == extract {
				ctx = insertTxInMock(ctx, mock)
			}
			expected := mock.ExpectExec(`INSERT INTO author_book`).WithArgs(int64(1), int64(2))
			if tt.errDB != nil {
				expected.WillReturnError(tt.errDB)
			} else {
				expected.WillReturnResult(pgxmock.NewResult("INSERT", tt.rows))
			}

			err := repo.CreateLink(ctx, 1, 2)
			require.ErrorIs(t, err, tErr)
		})
	}
}

func Test_linkRepository_DeleteLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows       int64
		errRequire error
	}{
		{
			name:       "deletes the pair",
			rows:       1,
			errRequire: nil,
		},

		{
			name:       "missing pair deletes nothing",
			rows:       0,
			errRequire: nil,
		},

		{
			name:       "err in exec",
			errRequire: errInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initLinksTest(t, TableGenreBook)
			tErr := tt.errRequire

			expected := mock.ExpectExec(`DELETE FROM genre_book WHERE left_id`).
				WithArgs(int64(3), int64(4))
			if tErr != nil {
				expected.WillReturnError(tErr)
			} else {
				expected.WillReturnResult(pgxmock.NewResult("DELETE", tt.rows))
			}

			count, err := repo.DeleteLink(ctx, 3, 4)
			require.ErrorIs(t, err, tErr)
			require.Equal(t, tt.rows, count)
		})
	}
}

func Test_linkRepository_Counts(t *testing.T) {
	t.Parallel()

	ctx, mock, repo := initLinksTest(t, TableAuthorBook)

	mock.ExpectQuery(`SELECT COUNT(.+) FROM author_book WHERE left_id`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(`SELECT COUNT(.+) FROM author_book WHERE right_id`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))

	left, err := repo.CountLeftLinks(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(3), left)

	right, err := repo.CountRightLinks(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, int64(5), right)
}

func Test_linkRepository_DeleteBulk(t *testing.T) {
	t.Parallel()

	ctx, mock, repo := initLinksTest(t, TableGenreBook)

	mock.ExpectExec(`DELETE FROM genre_book WHERE left_id`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec(`DELETE FROM genre_book WHERE right_id`).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	left, err := repo.DeleteLeftLinks(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), left)

	right, err := repo.DeleteRightLinks(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, int64(4), right)
}

func Test_loansRepository_CreateLoan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		txL        txLayer
		errDB      error
		errRequire error
	}{
		{
			name:       "ok with transaction",
			txL:        extract,
			errRequire: nil,
		},

		{
			name:       "dangling reference becomes a typed absence",
			txL:        extract,
			errDB:      &pgconn.PgError{Code: errForeignKeyViolation},
			errRequire: entity.ErrNotFound,
		},

		{
			name:       "err in query",
			txL:        none,
			errDB:      errInternal,
			errRequire: errInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initLoansTest(t)
			tErr := tt.errRequire
			loan := testLoan(1)

			if tt.txL == extract {
				ctx = insertTxInMock(ctx, mock)
			}
			expected := mock.ExpectQuery(`INSERT INTO user_book`).
				WithArgs(loan.UserID, loan.BookID, loan.GetAt, loan.MustReturnAt)
			if tt.errDB != nil {
				expected.WillReturnError(tt.errDB)
			} else {
				expected.WillReturnRows(loanRows(loan))
			}

			created, err := repo.CreateLoan(ctx, entity.Loan{
				UserID:       loan.UserID,
				BookID:       loan.BookID,
				GetAt:        loan.GetAt,
				MustReturnAt: loan.MustReturnAt,
			})
			require.ErrorIs(t, err, tErr)
			if tErr == nil {
				require.Equal(t, loan, created)
			}
		})
	}
}

func Test_loansRepository_GetLoan(t *testing.T) {
	t.Parallel()

	notReturned := false

	tests := []struct {
		name       string
		returned   *bool
		args       []any
		errDB      error
		errRequire error
	}{
		{
			name:     "latest loan of the pair",
			returned: nil,
			args:     []any{int64(42), int64(7)},
		},

		{
			name:     "narrowed to the active loan",
			returned: &notReturned,
			args:     []any{int64(42), int64(7), false},
		},

		{
			name:       "no loan on record",
			returned:   &notReturned,
			args:       []any{int64(42), int64(7), false},
			errDB:      pgx.ErrNoRows,
			errRequire: entity.ErrLoanNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initLoansTest(t)
			tErr := tt.errRequire
			loan := testLoan(9)

			expected := mock.ExpectQuery(`SELECT (.+) FROM user_book WHERE left_id`).
				WithArgs(tt.args...)
			if tt.errDB != nil {
				expected.WillReturnError(tt.errDB)
			} else {
				expected.WillReturnRows(loanRows(loan))
			}

			got, err := repo.GetLoan(ctx, 42, 7, tt.returned)
			require.ErrorIs(t, err, tErr)
			if tErr == nil {
				require.Equal(t, loan, got)
			}
		})
	}
}

func Test_loansRepository_ActiveLoans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		start   int64
		end     int64
		queries bool
		want    []entity.Loan
	}{
		{
			name:    "page of active loans",
			start:   0,
			end:     5,
			queries: true,
			want:    []entity.Loan{testLoan(1), testLoan(2)},
		},

		{
			name:    "degenerate window never reaches the database",
			start:   5,
			end:     5,
			queries: false,
			want:    []entity.Loan{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initLoansTest(t)

			if tt.queries {
				mock.ExpectQuery(`FROM user_book`).
					WithArgs(int64(42), tt.end-tt.start, tt.start).
					WillReturnRows(loanRows(tt.want...))
			}

			got, err := repo.ActiveLoans(ctx, 42, tt.start, tt.end)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_loansRepository_CloseLoan(t *testing.T) {
	t.Parallel()

	returnedAt := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		errDB      error
		errRequire error
	}{
		{
			name:       "closes the active loan",
			errRequire: nil,
		},

		{
			name:       "already returned loan is not closable twice",
			errDB:      pgx.ErrNoRows,
			errRequire: entity.ErrLoanNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, repo := initLoansTest(t)
			tErr := tt.errRequire

			closed := testLoan(9)
			closed.Returned = true
			closed.ReturnedAt = &returnedAt

			ctx = insertTxInMock(ctx, mock)
			expected := mock.ExpectQuery(`UPDATE user_book SET returned = TRUE`).
				WithArgs(closed.ID, returnedAt)
			if tt.errDB != nil {
				expected.WillReturnError(tt.errDB)
			} else {
				expected.WillReturnRows(loanRows(closed))
			}

			got, err := repo.CloseLoan(ctx, closed.ID, returnedAt)
			require.ErrorIs(t, err, tErr)
			if tErr == nil {
				require.True(t, got.Returned)
				require.Equal(t, &returnedAt, got.ReturnedAt)
			}
		})
	}
}

func Test_loansRepository_DeleteReturned(t *testing.T) {
	t.Parallel()

	ctx, mock, repo := initLoansTest(t)

	mock.ExpectExec(`DELETE FROM user_book WHERE left_id(.+)returned`).
		WithArgs(int64(42), true).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectExec(`DELETE FROM user_book WHERE right_id(.+)returned`).
		WithArgs(int64(7), true).
		WillReturnResult(pgxmock.NewResult("DELETE", 6))

	left, err := repo.DeleteLeftLinksReturned(ctx, 42, true)
	require.NoError(t, err)
	require.Equal(t, int64(3), left)

	right, err := repo.DeleteRightLinksReturned(ctx, 7, true)
	require.NoError(t, err)
	require.Equal(t, int64(6), right)
}
