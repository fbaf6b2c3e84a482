package lending

import (
	"context"
	"time"

	"github.com/project/lending/internal/entity"
)

type (
	// CatalogUseCase covers authors, genres and books: CRUD with
	// link-count deletion guards, plus link management between them.
	CatalogUseCase interface {
		CreateAuthor(ctx context.Context, name, biography string, born time.Time) (entity.Author, error)
		GetAuthor(ctx context.Context, idAuthor int64) (entity.Author, error)
		ListAuthors(ctx context.Context, start, end int64) ([]entity.Author, error)
		FindAuthors(ctx context.Context, phrase string, start, end int64) ([]entity.Author, error)
		UpdateAuthor(ctx context.Context, idAuthor int64, name, biography string, born time.Time) (entity.Author, error)
		DeleteAuthor(ctx context.Context, idAuthor int64) (entity.Author, error)

		CreateGenre(ctx context.Context, name, description string) (entity.Genre, error)
		GetGenre(ctx context.Context, idGenre int64) (entity.Genre, error)
		ListGenres(ctx context.Context, start, end int64) ([]entity.Genre, error)
		FindGenres(ctx context.Context, phrase string, start, end int64) ([]entity.Genre, error)
		UpdateGenre(ctx context.Context, idGenre int64, name, description string) (entity.Genre, error)
		DeleteGenre(ctx context.Context, idGenre int64) (entity.Genre, error)

		CreateBook(ctx context.Context, name, description string, publishYear, amount int64) (entity.Book, error)
		GetBook(ctx context.Context, idBook int64) (entity.Book, error)
		ListBooks(ctx context.Context, start, end int64) ([]entity.Book, error)
		FindBooks(ctx context.Context, phrase string, start, end int64) ([]entity.Book, error)
		UpdateBook(ctx context.Context, idBook int64, name, description string, publishYear int64) (entity.Book, error)
		DeleteBook(ctx context.Context, idBook int64) (entity.Book, error)

		LinkAuthorBook(ctx context.Context, idAuthor, idBook int64) error
		UnlinkAuthorBook(ctx context.Context, idAuthor, idBook int64) (int64, error)
		UnlinkBookAuthors(ctx context.Context, idBook int64) (int64, error)
		LinkGenreBook(ctx context.Context, idGenre, idBook int64) error
		UnlinkGenreBook(ctx context.Context, idGenre, idBook int64) (int64, error)
		UnlinkBookGenres(ctx context.Context, idBook int64) (int64, error)
		PurgeBookReturnedLoans(ctx context.Context, idBook int64) (int64, error)
	}

	UsersUseCase interface {
		RegisterUser(ctx context.Context, name, email, password string, born time.Time) (entity.User, error)
		GetUser(ctx context.Context, idUser int64) (entity.User, error)
		UpdateUser(ctx context.Context, idUser int64, name, email string, born time.Time) (entity.User, error)
		DeleteUser(ctx context.Context, idUser int64) (entity.User, error)
		PurgeUserReturnedLoans(ctx context.Context, idUser int64) (int64, error)
	}

	// LoansUseCase is the lending engine: the only writer of Book.Amount
	// and loan rows, always inside one transaction.
	LoansUseCase interface {
		TakeBook(ctx context.Context, idUser, idBook int64) (entity.Book, time.Time, error)
		ReturnBook(ctx context.Context, idUser, idBook int64) (entity.Book, error)
	}

	QueriesUseCase interface {
		AuthorBooks(ctx context.Context, idAuthor, start, end int64) ([]entity.Book, error)
		AuthorGenres(ctx context.Context, idAuthor, start, end int64) ([]entity.Genre, error)
		AuthorReaders(ctx context.Context, idAuthor int64, returned bool, start, end int64) ([]entity.User, error)
		GenreBooks(ctx context.Context, idGenre, start, end int64) ([]entity.Book, error)
		GenreAuthors(ctx context.Context, idGenre, start, end int64) ([]entity.Author, error)
		GenreReaders(ctx context.Context, idGenre int64, returned bool, start, end int64) ([]entity.User, error)
		BookAuthors(ctx context.Context, idBook, start, end int64) ([]entity.Author, error)
		BookGenres(ctx context.Context, idBook, start, end int64) ([]entity.Genre, error)
		BookReaders(ctx context.Context, idBook int64, returned bool, start, end int64) ([]entity.User, error)
		UserBooks(ctx context.Context, idUser int64, returned bool, start, end int64) ([]entity.Book, error)
		UserGenres(ctx context.Context, idUser int64, returned bool, start, end int64) ([]entity.Genre, error)
		UserAuthors(ctx context.Context, idUser int64, returned bool, start, end int64) ([]entity.Author, error)
		OverdueReaders(ctx context.Context, returned bool, start, end int64) ([]entity.User, error)
	}
)
