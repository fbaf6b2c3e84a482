package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/project/lending/internal/entity"
	"go.uber.org/zap"
)

const errForeignKeyViolation = "23503"

const (
	TableAuthorBook = "author_book"
	TableGenreBook  = "genre_book"
)

var _ LinksRepository = (*linkRepository)(nil)

// linkRepository manages a pure join table {left_id, right_id} with a
// composite primary key. Both author_book and genre_book share it.
type linkRepository struct {
	logger *zap.Logger
	db     DataBase
	table  string
}

func NewLinks(logger *zap.Logger, db DataBase, table string) *linkRepository {
	return &linkRepository{
		logger: logger,
		db:     db,
		table:  table,
	}
}

func (l *linkRepository) querier(ctx context.Context) DataBase {
	if tx, err := extractTx(ctx); err == nil {
		return tx
	}
	return l.db
}

// CreateLink inserts the pair if absent. A conflicting duplicate is
// silently absorbed; only a missing referenced entity is an error.
func (l *linkRepository) CreateLink(ctx context.Context, leftID, rightID int64) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (left_id, right_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		l.table,
	)

	_, err := l.querier(ctx).Exec(ctx, query, leftID, rightID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == errForeignKeyViolation {
		return fmt.Errorf("link (%d, %d) refers to missing row: %w", leftID, rightID, entity.ErrNotFound)
	}

	return err
}

func (l *linkRepository) DeleteLink(ctx context.Context, leftID, rightID int64) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE left_id = $1 AND right_id = $2", l.table)

	tag, err := l.querier(ctx).Exec(ctx, query, leftID, rightID)

	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (l *linkRepository) DeleteLeftLinks(ctx context.Context, leftID int64) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE left_id = $1", l.table)

	tag, err := l.querier(ctx).Exec(ctx, query, leftID)

	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (l *linkRepository) DeleteRightLinks(ctx context.Context, rightID int64) (int64, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE right_id = $1", l.table)

	tag, err := l.querier(ctx).Exec(ctx, query, rightID)

	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (l *linkRepository) CountLeftLinks(ctx context.Context, leftID int64) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE left_id = $1", l.table)

	var count int64
	err := l.querier(ctx).QueryRow(ctx, query, leftID).Scan(&count)

	if err != nil {
		return 0, err
	}

	return count, nil
}

func (l *linkRepository) CountRightLinks(ctx context.Context, rightID int64) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE right_id = $1", l.table)

	var count int64
	err := l.querier(ctx).QueryRow(ctx, query, rightID).Scan(&count)

	if err != nil {
		return 0, err
	}

	return count, nil
}

var _ LoansRepository = (*loansRepository)(nil)

type loansRepository struct {
	logger *zap.Logger
	db     DataBase
}

func NewLoans(logger *zap.Logger, db DataBase) *loansRepository {
	return &loansRepository{
		logger: logger,
		db:     db,
	}
}

func (l *loansRepository) querier(ctx context.Context) DataBase {
	if tx, err := extractTx(ctx); err == nil {
		return tx
	}
	return l.db
}

const loanColumns = "id, left_id, right_id, get_at, must_return_at, returned_at, returned"

func scanLoan(row rowScanner) (entity.Loan, error) {
	var loan entity.Loan
	err := row.Scan(
		&loan.ID, &loan.UserID, &loan.BookID,
		&loan.GetAt, &loan.MustReturnAt, &loan.ReturnedAt, &loan.Returned,
	)
	return loan, err
}

func (l *loansRepository) CreateLoan(ctx context.Context, loan entity.Loan) (entity.Loan, error) {
	const query = `
INSERT INTO user_book (left_id, right_id, get_at, must_return_at, returned)
VALUES ($1, $2, $3, $4, FALSE)
RETURNING id, left_id, right_id, get_at, must_return_at, returned_at, returned
`

	created, err := scanLoan(l.querier(ctx).QueryRow(ctx, query,
		loan.UserID, loan.BookID, loan.GetAt, loan.MustReturnAt))

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == errForeignKeyViolation {
		return entity.Loan{}, fmt.Errorf("loan (%d, %d) refers to missing row: %w",
			loan.UserID, loan.BookID, entity.ErrNotFound)
	}

	if err != nil {
		return entity.Loan{}, err
	}

	return created, nil
}

// GetLoan fetches one loan of the pair; a non-nil returned narrows the
// lookup to that state, which is how the engine finds the active loan.
func (l *loansRepository) GetLoan(ctx context.Context, idUser, idBook int64, returned *bool) (entity.Loan, error) {
	query := "SELECT " + loanColumns + " FROM user_book WHERE left_id = $1 AND right_id = $2"
	args := []any{idUser, idBook}

	if returned != nil {
		query += " AND returned = $3"
		args = append(args, *returned)
	}

	query += " ORDER BY id DESC LIMIT 1"

	loan, err := scanLoan(l.querier(ctx).QueryRow(ctx, query, args...))

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Loan{}, entity.ErrLoanNotFound
	}

	if err != nil {
		return entity.Loan{}, err
	}

	return loan, nil
}

func (l *loansRepository) ActiveLoans(ctx context.Context, idUser, start, end int64) ([]entity.Loan, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []entity.Loan{}, nil
	}

	const query = `
SELECT id, left_id, right_id, get_at, must_return_at, returned_at, returned
FROM user_book
WHERE left_id = $1 AND returned = FALSE
ORDER BY id
LIMIT $2 OFFSET $3
`

	rows, err := l.querier(ctx).Query(ctx, query, idUser, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, scanLoan)
}

// CloseLoan flips the loan to its terminal state. A loan already returned
// is not found: the transition happens exactly once.
func (l *loansRepository) CloseLoan(ctx context.Context, idLoan int64, returnedAt time.Time) (entity.Loan, error) {
	const query = `
UPDATE user_book SET returned = TRUE, returned_at = $2
WHERE id = $1 AND returned = FALSE
RETURNING id, left_id, right_id, get_at, must_return_at, returned_at, returned
`

	loan, err := scanLoan(l.querier(ctx).QueryRow(ctx, query, idLoan, returnedAt))

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Loan{}, entity.ErrLoanNotFound
	}

	if err != nil {
		return entity.Loan{}, err
	}

	return loan, nil
}

func (l *loansRepository) DeleteLink(ctx context.Context, leftID, rightID int64) (int64, error) {
	const query = "DELETE FROM user_book WHERE left_id = $1 AND right_id = $2"

	tag, err := l.querier(ctx).Exec(ctx, query, leftID, rightID)

	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (l *loansRepository) DeleteLeftLinksReturned(ctx context.Context, leftID int64, returned bool) (int64, error) {
	const query = "DELETE FROM user_book WHERE left_id = $1 AND returned = $2"

	tag, err := l.querier(ctx).Exec(ctx, query, leftID, returned)

	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (l *loansRepository) DeleteRightLinksReturned(ctx context.Context, rightID int64, returned bool) (int64, error) {
	const query = "DELETE FROM user_book WHERE right_id = $1 AND returned = $2"

	tag, err := l.querier(ctx).Exec(ctx, query, rightID, returned)

	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (l *loansRepository) CountLeftLinks(ctx context.Context, leftID int64) (int64, error) {
	const query = "SELECT COUNT(*) FROM user_book WHERE left_id = $1"

	var count int64
	err := l.querier(ctx).QueryRow(ctx, query, leftID).Scan(&count)

	if err != nil {
		return 0, err
	}

	return count, nil
}

func (l *loansRepository) CountRightLinks(ctx context.Context, rightID int64) (int64, error) {
	const query = "SELECT COUNT(*) FROM user_book WHERE right_id = $1"

	var count int64
	err := l.querier(ctx).QueryRow(ctx, query, rightID).Scan(&count)

	if err != nil {
		return 0, err
	}

	return count, nil
}
