package repository

import (
	"context"
	"time"

	"github.com/project/lending/internal/entity"
)

type (
	AuthorsRepository interface {
		CreateAuthor(ctx context.Context, author entity.Author) (entity.Author, error)
		GetAuthor(ctx context.Context, idAuthor int64) (entity.Author, error)
		ListAuthors(ctx context.Context, start, end int64) ([]entity.Author, error)
		FindAuthors(ctx context.Context, phrase string, start, end int64) ([]entity.Author, error)
		UpdateAuthor(ctx context.Context, idAuthor int64, fields map[string]any) (entity.Author, error)
		DeleteAuthor(ctx context.Context, idAuthor int64) (entity.Author, error)
	}

	GenresRepository interface {
		CreateGenre(ctx context.Context, genre entity.Genre) (entity.Genre, error)
		GetGenre(ctx context.Context, idGenre int64) (entity.Genre, error)
		ListGenres(ctx context.Context, start, end int64) ([]entity.Genre, error)
		FindGenres(ctx context.Context, phrase string, start, end int64) ([]entity.Genre, error)
		UpdateGenre(ctx context.Context, idGenre int64, fields map[string]any) (entity.Genre, error)
		DeleteGenre(ctx context.Context, idGenre int64) (entity.Genre, error)
	}

	BooksRepository interface {
		CreateBook(ctx context.Context, book entity.Book) (entity.Book, error)
		GetBook(ctx context.Context, idBook int64) (entity.Book, error)
		GetBookForUpdate(ctx context.Context, idBook int64) (entity.Book, error)
		ListBooks(ctx context.Context, start, end int64) ([]entity.Book, error)
		FindBooks(ctx context.Context, phrase string, start, end int64) ([]entity.Book, error)
		UpdateBook(ctx context.Context, idBook int64, fields map[string]any) (entity.Book, error)
		DeleteBook(ctx context.Context, idBook int64) (entity.Book, error)
		ChangeBookAmount(ctx context.Context, idBook, delta int64) (entity.Book, error)
	}

	UsersRepository interface {
		CreateUser(ctx context.Context, user entity.User) (entity.User, error)
		GetUser(ctx context.Context, idUser int64) (entity.User, error)
		ListUsers(ctx context.Context, start, end int64) ([]entity.User, error)
		FindUsers(ctx context.Context, phrase string, start, end int64) ([]entity.User, error)
		UpdateUser(ctx context.Context, idUser int64, fields map[string]any) (entity.User, error)
		DeleteUser(ctx context.Context, idUser int64) (entity.User, error)
	}

	// LinksRepository manages an at-most-one-row association (author_book,
	// genre_book). CreateLink is idempotent: a duplicate pair is absorbed
	// and reported as success.
	LinksRepository interface {
		CreateLink(ctx context.Context, leftID, rightID int64) error
		DeleteLink(ctx context.Context, leftID, rightID int64) (int64, error)
		DeleteLeftLinks(ctx context.Context, leftID int64) (int64, error)
		DeleteRightLinks(ctx context.Context, rightID int64) (int64, error)
		CountLeftLinks(ctx context.Context, leftID int64) (int64, error)
		CountRightLinks(ctx context.Context, rightID int64) (int64, error)
	}

	// LoansRepository is the multi-row-with-state variant of the link store:
	// the same (user, book) pair may hold many closed loans, and the bulk
	// deletes can be narrowed to a returned state.
	LoansRepository interface {
		CreateLoan(ctx context.Context, loan entity.Loan) (entity.Loan, error)
		GetLoan(ctx context.Context, idUser, idBook int64, returned *bool) (entity.Loan, error)
		ActiveLoans(ctx context.Context, idUser, start, end int64) ([]entity.Loan, error)
		CloseLoan(ctx context.Context, idLoan int64, returnedAt time.Time) (entity.Loan, error)
		DeleteLink(ctx context.Context, leftID, rightID int64) (int64, error)
		DeleteLeftLinksReturned(ctx context.Context, leftID int64, returned bool) (int64, error)
		DeleteRightLinksReturned(ctx context.Context, rightID int64, returned bool) (int64, error)
		CountLeftLinks(ctx context.Context, leftID int64) (int64, error)
		CountRightLinks(ctx context.Context, rightID int64) (int64, error)
	}

	QueriesRepository interface {
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
		UserActiveBook(ctx context.Context, idUser, idBook int64) (entity.Book, error)
		OverdueReaders(ctx context.Context, returned bool, today time.Time, start, end int64) ([]entity.User, error)
	}

	OutboxRepository interface {
		SendMessage(ctx context.Context, idempotencyKey string, kind OutboxKind, message []byte) error
		GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]OutboxData, error)
		MarkAs(ctx context.Context, idempotencyKeys []string, s Status) error
	}

	OutboxData struct {
		IdempotencyKey string
		Kind           OutboxKind
		RawData        []byte
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)

type OutboxKind int

const (
	OutboxKindUndefined OutboxKind = iota
	OutboxKindLoanTaken
	OutboxKindLoanReturned
	OutboxKindUserRegistered
)

func (o OutboxKind) String() string {
	switch o {
	case OutboxKindLoanTaken:
		return "loan_taken"
	case OutboxKindLoanReturned:
		return "loan_returned"
	case OutboxKindUserRegistered:
		return "user_registered"
	default:
		return "undefined"
	}
}
