package lending

import (
	"context"

	"github.com/project/lending/internal/entity"
)

// The query façade is read-only composition over the entity and link
// stores; pagination and ordering live in the repository layer, the HTTP
// boundary decides how an empty page is reported.

func (l *lendingImpl) AuthorBooks(ctx context.Context, idAuthor, start, end int64) ([]entity.Book, error) {
	return l.repo.Queries.AuthorBooks(ctx, idAuthor, start, end)
}

func (l *lendingImpl) AuthorGenres(ctx context.Context, idAuthor, start, end int64) ([]entity.Genre, error) {
	return l.repo.Queries.AuthorGenres(ctx, idAuthor, start, end)
}

func (l *lendingImpl) AuthorReaders(ctx context.Context, idAuthor int64, returned bool, start, end int64) ([]entity.User, error) {
	return l.repo.Queries.AuthorReaders(ctx, idAuthor, returned, start, end)
}

func (l *lendingImpl) GenreBooks(ctx context.Context, idGenre, start, end int64) ([]entity.Book, error) {
	return l.repo.Queries.GenreBooks(ctx, idGenre, start, end)
}

func (l *lendingImpl) GenreAuthors(ctx context.Context, idGenre, start, end int64) ([]entity.Author, error) {
	return l.repo.Queries.GenreAuthors(ctx, idGenre, start, end)
}

func (l *lendingImpl) GenreReaders(ctx context.Context, idGenre int64, returned bool, start, end int64) ([]entity.User, error) {
	return l.repo.Queries.GenreReaders(ctx, idGenre, returned, start, end)
}

func (l *lendingImpl) BookAuthors(ctx context.Context, idBook, start, end int64) ([]entity.Author, error) {
	return l.repo.Queries.BookAuthors(ctx, idBook, start, end)
}

func (l *lendingImpl) BookGenres(ctx context.Context, idBook, start, end int64) ([]entity.Genre, error) {
	return l.repo.Queries.BookGenres(ctx, idBook, start, end)
}

func (l *lendingImpl) BookReaders(ctx context.Context, idBook int64, returned bool, start, end int64) ([]entity.User, error) {
	return l.repo.Queries.BookReaders(ctx, idBook, returned, start, end)
}

func (l *lendingImpl) UserBooks(ctx context.Context, idUser int64, returned bool, start, end int64) ([]entity.Book, error) {
	return l.repo.Queries.UserBooks(ctx, idUser, returned, start, end)
}

func (l *lendingImpl) UserGenres(ctx context.Context, idUser int64, returned bool, start, end int64) ([]entity.Genre, error) {
	return l.repo.Queries.UserGenres(ctx, idUser, returned, start, end)
}

func (l *lendingImpl) UserAuthors(ctx context.Context, idUser int64, returned bool, start, end int64) ([]entity.Author, error) {
	return l.repo.Queries.UserAuthors(ctx, idUser, returned, start, end)
}

func (l *lendingImpl) OverdueReaders(ctx context.Context, returned bool, start, end int64) ([]entity.User, error) {
	return l.repo.Queries.OverdueReaders(ctx, returned, l.clock.Today(), start, end)
}
