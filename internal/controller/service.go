package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/project/lending/internal/entity"
	"go.uber.org/zap"
)

type (
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

	// AuthGate loads the caller and checks role set membership.
	AuthGate interface {
		Require(ctx context.Context, callerID int64, required ...entity.Role) (entity.User, error)
	}

	// CredentialResolver extracts the verified caller identity from a
	// request. Token verification itself lives outside this service.
	CredentialResolver interface {
		CallerID(r *http.Request) (int64, error)
	}
)

// HeaderCredentials trusts the caller id placed in a header by an
// authenticating proxy.
type HeaderCredentials struct {
	Header string
}

func NewHeaderCredentials() HeaderCredentials {
	return HeaderCredentials{Header: "X-User-ID"}
}

func (h HeaderCredentials) CallerID(r *http.Request) (int64, error) {
	raw := r.Header.Get(h.Header)

	if raw == "" {
		return 0, entity.ErrUnauthenticated
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, entity.ErrUnauthenticated
	}

	return id, nil
}

type implementation struct {
	logger      *zap.Logger
	catalog     CatalogUseCase
	users       UsersUseCase
	loans       LoansUseCase
	queries     QueriesUseCase
	gate        AuthGate
	credentials CredentialResolver
}

func New(
	logger *zap.Logger,
	catalog CatalogUseCase,
	users UsersUseCase,
	loans LoansUseCase,
	queries QueriesUseCase,
	gate AuthGate,
	credentials CredentialResolver,
) *implementation {
	return &implementation{
		logger:      logger,
		catalog:     catalog,
		users:       users,
		loans:       loans,
		queries:     queries,
		gate:        gate,
		credentials: credentials,
	}
}

func (i *implementation) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/author", func(r chi.Router) {
		r.Get("/", i.listAuthors)
		r.Get("/{id}", i.getAuthor)
		r.Get("/{id}/books", i.authorBooks)
		r.Get("/{id}/genres", i.authorGenres)
		r.Get("/{id}/readers", i.authorReaders)
		r.Post("/", i.createAuthor)
		r.Put("/{id}", i.updateAuthor)
		r.Delete("/{id}", i.deleteAuthor)
		r.Post("/{id}/book/{bookID}", i.linkAuthorBook)
		r.Delete("/{id}/book/{bookID}", i.unlinkAuthorBook)
	})

	r.Route("/genre", func(r chi.Router) {
		r.Get("/", i.listGenres)
		r.Get("/{id}", i.getGenre)
		r.Get("/{id}/books", i.genreBooks)
		r.Get("/{id}/authors", i.genreAuthors)
		r.Get("/{id}/readers", i.genreReaders)
		r.Post("/", i.createGenre)
		r.Put("/{id}", i.updateGenre)
		r.Delete("/{id}", i.deleteGenre)
		r.Post("/{id}/book/{bookID}", i.linkGenreBook)
		r.Delete("/{id}/book/{bookID}", i.unlinkGenreBook)
	})

	r.Route("/book", func(r chi.Router) {
		r.Get("/", i.listBooks)
		r.Get("/{id}", i.getBook)
		r.Get("/{id}/authors", i.bookAuthors)
		r.Get("/{id}/genres", i.bookGenres)
		r.Get("/{id}/readers", i.bookReaders)
		r.Post("/", i.createBook)
		r.Put("/{id}", i.updateBook)
		r.Delete("/{id}", i.deleteBook)
		r.Delete("/{id}/authors", i.unlinkBookAuthors)
		r.Delete("/{id}/genres", i.unlinkBookGenres)
		r.Delete("/{id}/loans", i.purgeBookLoans)
	})

	r.Route("/user", func(r chi.Router) {
		r.Post("/register", i.registerUser)
		r.Get("/me", i.getMe)
		r.Put("/me", i.updateMe)
		r.Post("/take_book/{bookID}", i.takeBook)
		r.Post("/return_book/{bookID}", i.returnBook)
		r.Get("/my/books", i.myBooks)
		r.Get("/my/genres", i.myGenres)
		r.Get("/my/authors", i.myAuthors)
		r.Delete("/my/loans", i.purgeMyLoans)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/user/{id}", i.adminGetUser)
		r.Put("/user/{id}", i.adminUpdateUser)
		r.Delete("/user/{id}", i.adminDeleteUser)
		r.Get("/user/{id}/books", i.adminUserBooks)
		r.Get("/user/{id}/genres", i.adminUserGenres)
		r.Get("/user/{id}/authors", i.adminUserAuthors)
		r.Delete("/user/{id}/loans", i.adminPurgeUserLoans)
		r.Get("/overdue", i.overdueReaders)
	})

	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

func (i *implementation) convertErr(w http.ResponseWriter, err error) {
	var code int

	switch {
	case errors.Is(err, entity.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, entity.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, entity.ErrUnauthenticated):
		code = http.StatusUnauthorized
	case errors.Is(err, entity.ErrForbidden):
		code = http.StatusForbidden
	default:
		code = http.StatusInternalServerError
	}

	writeJSON(i.logger, w, code, errorResponse{Error: err.Error()})
}

func (i *implementation) badRequest(w http.ResponseWriter, err error) {
	writeJSON(i.logger, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func writeJSON(logger *zap.Logger, w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil && logger != nil {
		logger.Error("can not encode response", zap.Error(err))
	}
}

// writeList reports an empty page as absence of the page itself.
func writeList[T any](logger *zap.Logger, w http.ResponseWriter, items []T) {
	if len(items) == 0 {
		writeJSON(logger, w, http.StatusNotFound, errorResponse{Error: entity.ErrNotFound.Error()})
		return
	}

	writeJSON(logger, w, http.StatusOK, items)
}

func parseID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

const (
	defaultStart int64 = 0
	defaultEnd   int64 = 100
)

func parseRange(r *http.Request) (int64, int64, error) {
	start, end := defaultStart, defaultEnd
	var err error

	if raw := r.URL.Query().Get("start"); raw != "" {
		if start, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return 0, 0, err
		}
	}

	if raw := r.URL.Query().Get("end"); raw != "" {
		if end, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return 0, 0, err
		}
	}

	return start, end, nil
}

func parseReturned(r *http.Request) (bool, error) {
	raw := r.URL.Query().Get("returned")

	if raw == "" {
		return false, nil
	}

	return strconv.ParseBool(raw)
}

// require resolves the caller and checks role membership in one step;
// a missing credential never reaches the gate.
func (i *implementation) require(r *http.Request, required ...entity.Role) (entity.User, error) {
	callerID, err := i.credentials.CallerID(r)

	if err != nil {
		return entity.User{}, err
	}

	return i.gate.Require(r.Context(), callerID, required...)
}
