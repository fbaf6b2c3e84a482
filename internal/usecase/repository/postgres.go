package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/project/lending/internal/entity"
	"go.uber.org/zap"
)

var _ AuthorsRepository = (*postgresRepository)(nil)
var _ GenresRepository = (*postgresRepository)(nil)
var _ BooksRepository = (*postgresRepository)(nil)
var _ UsersRepository = (*postgresRepository)(nil)
var _ QueriesRepository = (*postgresRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

// tableSpec describes one entity table for the generic store: its name,
// the insertable columns (id excluded) and how to read/write a row.
// Every query selects "id, <columns...>" in this exact order.
type tableSpec[T any] struct {
	table       string
	columns     []string
	values      func(T) []any
	scan        func(row rowScanner) (T, error)
	errNotFound error
}

var authorSpec = tableSpec[entity.Author]{
	table:   "authors",
	columns: []string{"name", "biography", "born"},
	values: func(a entity.Author) []any {
		return []any{a.Name, a.Biography, a.Born}
	},
	scan: func(row rowScanner) (entity.Author, error) {
		var a entity.Author
		err := row.Scan(&a.ID, &a.Name, &a.Biography, &a.Born)
		return a, err
	},
	errNotFound: entity.ErrAuthorNotFound,
}

var genreSpec = tableSpec[entity.Genre]{
	table:   "genres",
	columns: []string{"name", "description"},
	values: func(g entity.Genre) []any {
		return []any{g.Name, g.Description}
	},
	scan: func(row rowScanner) (entity.Genre, error) {
		var g entity.Genre
		err := row.Scan(&g.ID, &g.Name, &g.Description)
		return g, err
	},
	errNotFound: entity.ErrGenreNotFound,
}

var bookSpec = tableSpec[entity.Book]{
	table:   "books",
	columns: []string{"name", "description", "publish_year", "amount"},
	values: func(b entity.Book) []any {
		return []any{b.Name, b.Description, b.PublishYear, b.Amount}
	},
	scan: func(row rowScanner) (entity.Book, error) {
		var b entity.Book
		err := row.Scan(&b.ID, &b.Name, &b.Description, &b.PublishYear, &b.Amount)
		return b, err
	},
	errNotFound: entity.ErrBookNotFound,
}

var userSpec = tableSpec[entity.User]{
	table:   "users",
	columns: []string{"name", "hashed_password", "email", "role_id", "born", "verified", "verify_code"},
	values: func(u entity.User) []any {
		return []any{u.Name, u.HashedPassword, u.Email, u.RoleID, u.Born, u.Verified, u.VerifyCode}
	},
	scan: func(row rowScanner) (entity.User, error) {
		var u entity.User
		err := row.Scan(&u.ID, &u.Name, &u.HashedPassword, &u.Email, &u.RoleID, &u.Born, &u.Verified, &u.VerifyCode)
		return u, err
	},
	errNotFound: entity.ErrUserNotFound,
}

func (s tableSpec[T]) selectList() string {
	return "id, " + strings.Join(s.columns, ", ")
}

func placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

// pageWindow converts a half-open [start, end) window to LIMIT/OFFSET.
// A degenerate window is a valid request for an empty page.
func pageWindow(start, end int64) (limit, offset int64, ok bool) {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return 0, 0, false
	}
	return end - start, start, true
}

func (s tableSpec[T]) create(ctx context.Context, q DataBase, item T) (T, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		s.table, strings.Join(s.columns, ", "), placeholders(len(s.columns)), s.selectList(),
	)

	created, err := s.scan(q.QueryRow(ctx, query, s.values(item)...))

	if err != nil {
		var zero T
		return zero, err
	}

	return created, nil
}

func (s tableSpec[T]) getOne(ctx context.Context, q DataBase, id int64, forUpdate bool) (T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", s.selectList(), s.table)
	if forUpdate {
		query += " FOR UPDATE"
	}

	item, err := s.scan(q.QueryRow(ctx, query, id))

	if errors.Is(err, pgx.ErrNoRows) {
		var zero T
		return zero, s.errNotFound
	}

	if err != nil {
		var zero T
		return zero, err
	}

	return item, nil
}

func (s tableSpec[T]) list(ctx context.Context, q DataBase, start, end int64) ([]T, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []T{}, nil
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY name LIMIT $1 OFFSET $2",
		s.selectList(), s.table,
	)

	rows, err := q.Query(ctx, query, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, s.scan)
}

func (s tableSpec[T]) findByName(ctx context.Context, q DataBase, phrase string, start, end int64) ([]T, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []T{}, nil
	}

	// POSITION keeps the containment check case-sensitive, unlike ILIKE.
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE POSITION($1 IN name) > 0 ORDER BY name LIMIT $2 OFFSET $3",
		s.selectList(), s.table,
	)

	rows, err := q.Query(ctx, query, phrase, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, s.scan)
}

func (s tableSpec[T]) update(ctx context.Context, q DataBase, id int64, fields map[string]any) (T, error) {
	var zero T

	if len(fields) == 0 {
		return s.getOne(ctx, q, id, false)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	assignments := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys)+1)
	for i, k := range keys {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", k, i+1))
		args = append(args, fields[k])
	}
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		s.table, strings.Join(assignments, ", "), len(args), s.selectList(),
	)

	updated, err := s.scan(q.QueryRow(ctx, query, args...))

	if errors.Is(err, pgx.ErrNoRows) {
		return zero, s.errNotFound
	}

	if err != nil {
		return zero, err
	}

	return updated, nil
}

func (s tableSpec[T]) delete(ctx context.Context, q DataBase, id int64) (T, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING %s", s.table, s.selectList())

	deleted, err := s.scan(q.QueryRow(ctx, query, id))

	if errors.Is(err, pgx.ErrNoRows) {
		var zero T
		return zero, s.errNotFound
	}

	if err != nil {
		var zero T
		return zero, err
	}

	return deleted, nil
}

func scanAll[T any](rows pgx.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	result := make([]T, 0)

	for rows.Next() {
		item, err := scan(rows)

		if err != nil {
			return nil, err
		}

		result = append(result, item)
	}

	return result, rows.Err()
}

type postgresRepository struct {
	logger *zap.Logger
	db     DataBase
}

func New(logger *zap.Logger, db DataBase) *postgresRepository {
	return &postgresRepository{
		logger: logger,
		db:     db,
	}
}

// querier prefers the ambient transaction when the transactor opened one.
func (p *postgresRepository) querier(ctx context.Context) DataBase {
	if tx, err := extractTx(ctx); err == nil {
		return tx
	}
	return p.db
}

func (p *postgresRepository) CreateAuthor(ctx context.Context, author entity.Author) (entity.Author, error) {
	return authorSpec.create(ctx, p.querier(ctx), author)
}

func (p *postgresRepository) GetAuthor(ctx context.Context, idAuthor int64) (entity.Author, error) {
	return authorSpec.getOne(ctx, p.querier(ctx), idAuthor, false)
}

func (p *postgresRepository) ListAuthors(ctx context.Context, start, end int64) ([]entity.Author, error) {
	return authorSpec.list(ctx, p.querier(ctx), start, end)
}

func (p *postgresRepository) FindAuthors(ctx context.Context, phrase string, start, end int64) ([]entity.Author, error) {
	return authorSpec.findByName(ctx, p.querier(ctx), phrase, start, end)
}

func (p *postgresRepository) UpdateAuthor(ctx context.Context, idAuthor int64, fields map[string]any) (entity.Author, error) {
	return authorSpec.update(ctx, p.querier(ctx), idAuthor, fields)
}

func (p *postgresRepository) DeleteAuthor(ctx context.Context, idAuthor int64) (entity.Author, error) {
	return authorSpec.delete(ctx, p.querier(ctx), idAuthor)
}

func (p *postgresRepository) CreateGenre(ctx context.Context, genre entity.Genre) (entity.Genre, error) {
	return genreSpec.create(ctx, p.querier(ctx), genre)
}

func (p *postgresRepository) GetGenre(ctx context.Context, idGenre int64) (entity.Genre, error) {
	return genreSpec.getOne(ctx, p.querier(ctx), idGenre, false)
}

func (p *postgresRepository) ListGenres(ctx context.Context, start, end int64) ([]entity.Genre, error) {
	return genreSpec.list(ctx, p.querier(ctx), start, end)
}

func (p *postgresRepository) FindGenres(ctx context.Context, phrase string, start, end int64) ([]entity.Genre, error) {
	return genreSpec.findByName(ctx, p.querier(ctx), phrase, start, end)
}

func (p *postgresRepository) UpdateGenre(ctx context.Context, idGenre int64, fields map[string]any) (entity.Genre, error) {
	return genreSpec.update(ctx, p.querier(ctx), idGenre, fields)
}

func (p *postgresRepository) DeleteGenre(ctx context.Context, idGenre int64) (entity.Genre, error) {
	return genreSpec.delete(ctx, p.querier(ctx), idGenre)
}

func (p *postgresRepository) CreateBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	return bookSpec.create(ctx, p.querier(ctx), book)
}

func (p *postgresRepository) GetBook(ctx context.Context, idBook int64) (entity.Book, error) {
	return bookSpec.getOne(ctx, p.querier(ctx), idBook, false)
}

// GetBookForUpdate locks the book row for the rest of the ambient
// transaction. The lending engine serializes all amount mutations on it.
func (p *postgresRepository) GetBookForUpdate(ctx context.Context, idBook int64) (entity.Book, error) {
	return bookSpec.getOne(ctx, p.querier(ctx), idBook, true)
}

func (p *postgresRepository) ListBooks(ctx context.Context, start, end int64) ([]entity.Book, error) {
	return bookSpec.list(ctx, p.querier(ctx), start, end)
}

func (p *postgresRepository) FindBooks(ctx context.Context, phrase string, start, end int64) ([]entity.Book, error) {
	return bookSpec.findByName(ctx, p.querier(ctx), phrase, start, end)
}

func (p *postgresRepository) UpdateBook(ctx context.Context, idBook int64, fields map[string]any) (entity.Book, error) {
	return bookSpec.update(ctx, p.querier(ctx), idBook, fields)
}

func (p *postgresRepository) DeleteBook(ctx context.Context, idBook int64) (entity.Book, error) {
	return bookSpec.delete(ctx, p.querier(ctx), idBook)
}

func (p *postgresRepository) ChangeBookAmount(ctx context.Context, idBook, delta int64) (entity.Book, error) {
	const query = `
UPDATE books SET amount = amount + $2
WHERE id = $1
RETURNING id, name, description, publish_year, amount
`

	book, err := bookSpec.scan(p.querier(ctx).QueryRow(ctx, query, idBook, delta))

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}

	if err != nil {
		return entity.Book{}, err
	}

	return book, nil
}

func (p *postgresRepository) CreateUser(ctx context.Context, user entity.User) (entity.User, error) {
	return userSpec.create(ctx, p.querier(ctx), user)
}

func (p *postgresRepository) GetUser(ctx context.Context, idUser int64) (entity.User, error) {
	return userSpec.getOne(ctx, p.querier(ctx), idUser, false)
}

func (p *postgresRepository) ListUsers(ctx context.Context, start, end int64) ([]entity.User, error) {
	return userSpec.list(ctx, p.querier(ctx), start, end)
}

func (p *postgresRepository) FindUsers(ctx context.Context, phrase string, start, end int64) ([]entity.User, error) {
	return userSpec.findByName(ctx, p.querier(ctx), phrase, start, end)
}

func (p *postgresRepository) UpdateUser(ctx context.Context, idUser int64, fields map[string]any) (entity.User, error) {
	return userSpec.update(ctx, p.querier(ctx), idUser, fields)
}

func (p *postgresRepository) DeleteUser(ctx context.Context, idUser int64) (entity.User, error) {
	return userSpec.delete(ctx, p.querier(ctx), idUser)
}
