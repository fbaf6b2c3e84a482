package lending

import (
	"context"
	"time"

	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/log"
	"github.com/project/lending/internal/usecase/repository"
	"go.opentelemetry.io/otel/trace"
)

func (l *lendingImpl) CreateAuthor(ctx context.Context, name, biography string, born time.Time) (entity.Author, error) {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID().String()

	author, err := l.repo.Authors.CreateAuthor(ctx, entity.Author{
		Name:      name,
		Biography: biography,
		Born:      born,
	})

	if log.ErrorData(l.logger, err, log.CreateData, "failed create author", traceID, "author", 0) {
		return entity.Author{}, err
	}

	log.InfoData(l.logger, log.CreateData, "created the author", traceID, "author", author.ID)
	return author, nil
}

func (l *lendingImpl) GetAuthor(ctx context.Context, idAuthor int64) (entity.Author, error) {
	return l.repo.Authors.GetAuthor(ctx, idAuthor)
}

func (l *lendingImpl) ListAuthors(ctx context.Context, start, end int64) ([]entity.Author, error) {
	return l.repo.Authors.ListAuthors(ctx, start, end)
}

func (l *lendingImpl) FindAuthors(ctx context.Context, phrase string, start, end int64) ([]entity.Author, error) {
	return l.repo.Authors.FindAuthors(ctx, phrase, start, end)
}

func (l *lendingImpl) UpdateAuthor(ctx context.Context, idAuthor int64, name, biography string, born time.Time) (entity.Author, error) {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID().String()

	author, err := l.repo.Authors.UpdateAuthor(ctx, idAuthor, map[string]any{
		"name":      name,
		"biography": biography,
		"born":      born,
	})

	if log.ErrorData(l.logger, err, log.UpdateData, "failed update author", traceID, "author", idAuthor) {
		return entity.Author{}, err
	}

	return author, nil
}

// DeleteAuthor refuses while any book link remains; the message carries
// the exact count so the caller knows how much cleanup is left.
func (l *lendingImpl) DeleteAuthor(ctx context.Context, idAuthor int64) (entity.Author, error) {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID().String()

	linked, err := l.repo.AuthorBooks.CountLeftLinks(ctx, idAuthor)

	if err != nil {
		return entity.Author{}, err
	}

	if linked > 0 {
		return entity.Author{}, entity.Conflictf("can not delete author, because there are %d links to books", linked)
	}

	author, err := l.repo.Authors.DeleteAuthor(ctx, idAuthor)

	if log.ErrorData(l.logger, err, log.DeleteData, "failed delete author", traceID, "author", idAuthor) {
		return entity.Author{}, err
	}

	log.InfoData(l.logger, log.DeleteData, "deleted the author", traceID, "author", idAuthor)
	return author, nil
}

func (l *lendingImpl) CreateGenre(ctx context.Context, name, description string) (entity.Genre, error) {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID().String()

	genre, err := l.repo.Genres.CreateGenre(ctx, entity.Genre{
		Name:        name,
		Description: description,
	})

	if log.ErrorData(l.logger, err, log.CreateData, "failed create genre", traceID, "genre", 0) {
		return entity.Genre{}, err
	}

	log.InfoData(l.logger, log.CreateData, "created the genre", traceID, "genre", genre.ID)
	return genre, nil
}

func (l *lendingImpl) GetGenre(ctx context.Context, idGenre int64) (entity.Genre, error) {
	return l.repo.Genres.GetGenre(ctx, idGenre)
}

func (l *lendingImpl) ListGenres(ctx context.Context, start, end int64) ([]entity.Genre, error) {
	return l.repo.Genres.ListGenres(ctx, start, end)
}

func (l *lendingImpl) FindGenres(ctx context.Context, phrase string, start, end int64) ([]entity.Genre, error) {
	return l.repo.Genres.FindGenres(ctx, phrase, start, end)
}

func (l *lendingImpl) UpdateGenre(ctx context.Context, idGenre int64, name, description string) (entity.Genre, error) {
	return l.repo.Genres.UpdateGenre(ctx, idGenre, map[string]any{
		"name":        name,
		"description": description,
	})
}

func (l *lendingImpl) DeleteGenre(ctx context.Context, idGenre int64) (entity.Genre, error) {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID().String()

	linked, err := l.repo.GenreBooks.CountLeftLinks(ctx, idGenre)

	if err != nil {
		return entity.Genre{}, err
	}

	if linked > 0 {
		return entity.Genre{}, entity.Conflictf("can not delete genre, because there are %d links to books", linked)
	}

	genre, err := l.repo.Genres.DeleteGenre(ctx, idGenre)

	if log.ErrorData(l.logger, err, log.DeleteData, "failed delete genre", traceID, "genre", idGenre) {
		return entity.Genre{}, err
	}

	log.InfoData(l.logger, log.DeleteData, "deleted the genre", traceID, "genre", idGenre)
	return genre, nil
}

func (l *lendingImpl) CreateBook(ctx context.Context, name, description string, publishYear, amount int64) (entity.Book, error) {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID().String()

	book, err := l.repo.Books.CreateBook(ctx, entity.Book{
		Name:        name,
		Description: description,
		PublishYear: publishYear,
		Amount:      amount,
	})

	if log.ErrorData(l.logger, err, log.CreateData, "failed create book", traceID, "book", 0) {
		return entity.Book{}, err
	}

	log.InfoData(l.logger, log.CreateData, "created the book", traceID, "book", book.ID)
	return book, nil
}

func (l *lendingImpl) GetBook(ctx context.Context, idBook int64) (entity.Book, error) {
	return l.repo.Books.GetBook(ctx, idBook)
}

func (l *lendingImpl) ListBooks(ctx context.Context, start, end int64) ([]entity.Book, error) {
	return l.repo.Books.ListBooks(ctx, start, end)
}

func (l *lendingImpl) FindBooks(ctx context.Context, phrase string, start, end int64) ([]entity.Book, error) {
	return l.repo.Books.FindBooks(ctx, phrase, start, end)
}

// UpdateBook never touches amount: that column belongs to the lending
// engine alone.
func (l *lendingImpl) UpdateBook(ctx context.Context, idBook int64, name, description string, publishYear int64) (entity.Book, error) {
	return l.repo.Books.UpdateBook(ctx, idBook, map[string]any{
		"name":         name,
		"description":  description,
		"publish_year": publishYear,
	})
}

// DeleteBook requires zero author links, zero genre links, zero copies
// out and zero loan history, checked in that order.
func (l *lendingImpl) DeleteBook(ctx context.Context, idBook int64) (entity.Book, error) {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID().String()

	linkedAuthors, err := l.repo.AuthorBooks.CountRightLinks(ctx, idBook)

	if err != nil {
		return entity.Book{}, err
	}

	if linkedAuthors > 0 {
		return entity.Book{}, entity.Conflictf("can not delete book, because there are %d links to authors", linkedAuthors)
	}

	linkedGenres, err := l.repo.GenreBooks.CountRightLinks(ctx, idBook)

	if err != nil {
		return entity.Book{}, err
	}

	if linkedGenres > 0 {
		return entity.Book{}, entity.Conflictf("can not delete book, because there are %d links to genres", linkedGenres)
	}

	readers, err := l.repo.Queries.BookReaders(ctx, idBook, false, 0, 1)

	if err != nil {
		return entity.Book{}, err
	}

	if len(readers) > 0 {
		return entity.Book{}, entity.Conflictf("can not delete book, because there are %d copies out", len(readers))
	}

	linkedUsers, err := l.repo.Loans.CountRightLinks(ctx, idBook)

	if err != nil {
		return entity.Book{}, err
	}

	if linkedUsers > 0 {
		return entity.Book{}, entity.Conflictf("can not delete book, because there are %d links to users", linkedUsers)
	}

	book, err := l.repo.Books.DeleteBook(ctx, idBook)

	if log.ErrorData(l.logger, err, log.DeleteData, "failed delete book", traceID, "book", idBook) {
		return entity.Book{}, err
	}

	log.InfoData(l.logger, log.DeleteData, "deleted the book", traceID, "book", idBook)
	return book, nil
}

func (l *lendingImpl) LinkAuthorBook(ctx context.Context, idAuthor, idBook int64) error {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID().String()

	err := l.repo.AuthorBooks.CreateLink(ctx, idAuthor, idBook)

	if log.ErrorLink(l.logger, err, log.CreateLink, "failed link author to book", traceID, repository.TableAuthorBook, idAuthor, idBook) {
		return err
	}

	log.InfoLink(l.logger, log.CreateLink, "linked author to book", traceID, repository.TableAuthorBook, idAuthor, idBook)
	return nil
}

func (l *lendingImpl) UnlinkAuthorBook(ctx context.Context, idAuthor, idBook int64) (int64, error) {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID().String()

	removed, err := l.repo.AuthorBooks.DeleteLink(ctx, idAuthor, idBook)

	if log.ErrorLink(l.logger, err, log.DeleteLink, "failed unlink author from book", traceID, repository.TableAuthorBook, idAuthor, idBook) {
		return 0, err
	}

	return removed, nil
}

func (l *lendingImpl) UnlinkBookAuthors(ctx context.Context, idBook int64) (int64, error) {
	return l.repo.AuthorBooks.DeleteRightLinks(ctx, idBook)
}

func (l *lendingImpl) LinkGenreBook(ctx context.Context, idGenre, idBook int64) error {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID().String()

	err := l.repo.GenreBooks.CreateLink(ctx, idGenre, idBook)

	if log.ErrorLink(l.logger, err, log.CreateLink, "failed link genre to book", traceID, repository.TableGenreBook, idGenre, idBook) {
		return err
	}

	log.InfoLink(l.logger, log.CreateLink, "linked genre to book", traceID, repository.TableGenreBook, idGenre, idBook)
	return nil
}

func (l *lendingImpl) UnlinkGenreBook(ctx context.Context, idGenre, idBook int64) (int64, error) {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID().String()

	removed, err := l.repo.GenreBooks.DeleteLink(ctx, idGenre, idBook)

	if log.ErrorLink(l.logger, err, log.DeleteLink, "failed unlink genre from book", traceID, repository.TableGenreBook, idGenre, idBook) {
		return 0, err
	}

	return removed, nil
}

func (l *lendingImpl) UnlinkBookGenres(ctx context.Context, idBook int64) (int64, error) {
	return l.repo.GenreBooks.DeleteRightLinks(ctx, idBook)
}

// PurgeBookReturnedLoans drops closed-loan history of a book; active
// loans are never touched by administrative cleanup.
func (l *lendingImpl) PurgeBookReturnedLoans(ctx context.Context, idBook int64) (int64, error) {
	return l.repo.Loans.DeleteRightLinksReturned(ctx, idBook, true)
}
