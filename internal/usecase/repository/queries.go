package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/project/lending/internal/entity"
)

// Read-side joins across entities and links. Every query is paginated with
// a half-open [start, end) window and ordered by the related entity's name
// so that pages are deterministic.

func (p *postgresRepository) AuthorBooks(ctx context.Context, idAuthor, start, end int64) ([]entity.Book, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []entity.Book{}, nil
	}

	const query = `
SELECT b.id, b.name, b.description, b.publish_year, b.amount
FROM books b
JOIN author_book ab ON ab.right_id = b.id
WHERE ab.left_id = $1
ORDER BY b.name
LIMIT $2 OFFSET $3
`

	rows, err := p.querier(ctx).Query(ctx, query, idAuthor, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, bookSpec.scan)
}

func (p *postgresRepository) AuthorGenres(ctx context.Context, idAuthor, start, end int64) ([]entity.Genre, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []entity.Genre{}, nil
	}

	const query = `
SELECT DISTINCT g.id, g.name, g.description
FROM genres g
JOIN genre_book gb ON gb.left_id = g.id
JOIN author_book ab ON ab.right_id = gb.right_id
WHERE ab.left_id = $1
ORDER BY g.name
LIMIT $2 OFFSET $3
`

	rows, err := p.querier(ctx).Query(ctx, query, idAuthor, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, genreSpec.scan)
}

func (p *postgresRepository) AuthorReaders(ctx context.Context, idAuthor int64, returned bool, start, end int64) ([]entity.User, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []entity.User{}, nil
	}

	const query = `
SELECT DISTINCT u.id, u.name, u.hashed_password, u.email, u.role_id, u.born, u.verified, u.verify_code
FROM users u
JOIN user_book ub ON ub.left_id = u.id AND ub.returned = $2
JOIN author_book ab ON ab.right_id = ub.right_id
WHERE ab.left_id = $1
ORDER BY u.name
LIMIT $3 OFFSET $4
`

	rows, err := p.querier(ctx).Query(ctx, query, idAuthor, returned, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, userSpec.scan)
}

func (p *postgresRepository) GenreBooks(ctx context.Context, idGenre, start, end int64) ([]entity.Book, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []entity.Book{}, nil
	}

	const query = `
SELECT b.id, b.name, b.description, b.publish_year, b.amount
FROM books b
JOIN genre_book gb ON gb.right_id = b.id
WHERE gb.left_id = $1
ORDER BY b.name
LIMIT $2 OFFSET $3
`

	rows, err := p.querier(ctx).Query(ctx, query, idGenre, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, bookSpec.scan)
}

func (p *postgresRepository) GenreAuthors(ctx context.Context, idGenre, start, end int64) ([]entity.Author, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []entity.Author{}, nil
	}

	const query = `
SELECT DISTINCT a.id, a.name, a.biography, a.born
FROM authors a
JOIN author_book ab ON ab.left_id = a.id
JOIN genre_book gb ON gb.right_id = ab.right_id
WHERE gb.left_id = $1
ORDER BY a.name
LIMIT $2 OFFSET $3
`

	rows, err := p.querier(ctx).Query(ctx, query, idGenre, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, authorSpec.scan)
}

func (p *postgresRepository) GenreReaders(ctx context.Context, idGenre int64, returned bool, start, end int64) ([]entity.User, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []entity.User{}, nil
	}

	const query = `
SELECT DISTINCT u.id, u.name, u.hashed_password, u.email, u.role_id, u.born, u.verified, u.verify_code
FROM users u
JOIN user_book ub ON ub.left_id = u.id AND ub.returned = $2
JOIN genre_book gb ON gb.right_id = ub.right_id
WHERE gb.left_id = $1
ORDER BY u.name
LIMIT $3 OFFSET $4
`

	rows, err := p.querier(ctx).Query(ctx, query, idGenre, returned, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, userSpec.scan)
}

func (p *postgresRepository) BookAuthors(ctx context.Context, idBook, start, end int64) ([]entity.Author, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []entity.Author{}, nil
	}

	const query = `
SELECT DISTINCT a.id, a.name, a.biography, a.born
FROM authors a
JOIN author_book ab ON ab.left_id = a.id
WHERE ab.right_id = $1
ORDER BY a.name
LIMIT $2 OFFSET $3
`

	rows, err := p.querier(ctx).Query(ctx, query, idBook, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, authorSpec.scan)
}

func (p *postgresRepository) BookGenres(ctx context.Context, idBook, start, end int64) ([]entity.Genre, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []entity.Genre{}, nil
	}

	const query = `
SELECT DISTINCT g.id, g.name, g.description
FROM genres g
JOIN genre_book gb ON gb.left_id = g.id
WHERE gb.right_id = $1
ORDER BY g.name
LIMIT $2 OFFSET $3
`

	rows, err := p.querier(ctx).Query(ctx, query, idBook, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, genreSpec.scan)
}

func (p *postgresRepository) BookReaders(ctx context.Context, idBook int64, returned bool, start, end int64) ([]entity.User, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []entity.User{}, nil
	}

	const query = `
SELECT DISTINCT u.id, u.name, u.hashed_password, u.email, u.role_id, u.born, u.verified, u.verify_code
FROM users u
JOIN user_book ub ON ub.left_id = u.id
WHERE ub.right_id = $1 AND ub.returned = $2
ORDER BY u.name
LIMIT $3 OFFSET $4
`

	rows, err := p.querier(ctx).Query(ctx, query, idBook, returned, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, userSpec.scan)
}

func (p *postgresRepository) UserBooks(ctx context.Context, idUser int64, returned bool, start, end int64) ([]entity.Book, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []entity.Book{}, nil
	}

	const query = `
SELECT DISTINCT b.id, b.name, b.description, b.publish_year, b.amount
FROM books b
JOIN user_book ub ON ub.right_id = b.id
WHERE ub.left_id = $1 AND ub.returned = $2
ORDER BY b.name
LIMIT $3 OFFSET $4
`

	rows, err := p.querier(ctx).Query(ctx, query, idUser, returned, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, bookSpec.scan)
}

func (p *postgresRepository) UserGenres(ctx context.Context, idUser int64, returned bool, start, end int64) ([]entity.Genre, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []entity.Genre{}, nil
	}

	const query = `
SELECT DISTINCT g.id, g.name, g.description
FROM genres g
JOIN genre_book gb ON gb.left_id = g.id
JOIN user_book ub ON ub.right_id = gb.right_id
WHERE ub.left_id = $1 AND ub.returned = $2
ORDER BY g.name
LIMIT $3 OFFSET $4
`

	rows, err := p.querier(ctx).Query(ctx, query, idUser, returned, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, genreSpec.scan)
}

func (p *postgresRepository) UserAuthors(ctx context.Context, idUser int64, returned bool, start, end int64) ([]entity.Author, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []entity.Author{}, nil
	}

	const query = `
SELECT DISTINCT a.id, a.name, a.biography, a.born
FROM authors a
JOIN author_book ab ON ab.left_id = a.id
JOIN user_book ub ON ub.right_id = ab.right_id
WHERE ub.left_id = $1 AND ub.returned = $2
ORDER BY a.name
LIMIT $3 OFFSET $4
`

	rows, err := p.querier(ctx).Query(ctx, query, idUser, returned, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, authorSpec.scan)
}

// UserActiveBook resolves the book only if the user currently holds it.
func (p *postgresRepository) UserActiveBook(ctx context.Context, idUser, idBook int64) (entity.Book, error) {
	const query = `
SELECT b.id, b.name, b.description, b.publish_year, b.amount
FROM books b
JOIN user_book ub ON ub.right_id = b.id
WHERE ub.left_id = $1 AND b.id = $2 AND ub.returned = FALSE
LIMIT 1
`

	book, err := bookSpec.scan(p.querier(ctx).QueryRow(ctx, query, idUser, idBook))

	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}

	if err != nil {
		return entity.Book{}, err
	}

	return book, nil
}

// OverdueReaders keeps the dual comparison of the lending rules: a closed
// loan is overdue when it came back late (returned_at), an open one when
// today is already past the due date.
func (p *postgresRepository) OverdueReaders(ctx context.Context, returned bool, today time.Time, start, end int64) ([]entity.User, error) {
	limit, offset, ok := pageWindow(start, end)
	if !ok {
		return []entity.User{}, nil
	}

	const query = `
SELECT DISTINCT u.id, u.name, u.hashed_password, u.email, u.role_id, u.born, u.verified, u.verify_code
FROM users u
JOIN user_book ub ON ub.left_id = u.id
WHERE ub.returned = $1
  AND (CASE WHEN ub.returned THEN ub.returned_at ELSE $2::date END) > ub.must_return_at
ORDER BY u.name
LIMIT $3 OFFSET $4
`

	rows, err := p.querier(ctx).Query(ctx, query, returned, today, limit, offset)

	if err != nil {
		return nil, err
	}

	return scanAll(rows, userSpec.scan)
}
