package controller

import (
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type bookRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PublishYear int64  `json:"publish_year"`
	Amount      int64  `json:"amount"`
}

func (b bookRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Name, validation.Required, validation.Length(1, 512)),
		validation.Field(&b.PublishYear, validation.Required, validation.Min(0)),
		validation.Field(&b.Amount, validation.Min(0)),
	)
}

func (i *implementation) createBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		i.badRequest(w, err)
		return
	}

	if err := req.Validate(); log.ErrorData(i.logger, err, log.CreateData, "Got invalid request", traceID, "book", 0) {
		span.SetAttributes(attribute.String("book_name", req.Name))
		span.RecordError(err)
		i.badRequest(w, err)
		return
	}

	book, err := i.catalog.CreateBook(ctx, req.Name, req.Description, req.PublishYear, req.Amount)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusCreated, book)
}

func (i *implementation) getBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	book, err := i.catalog.GetBook(r.Context(), id)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, book)
}

func (i *implementation) listBooks(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r)
	if err != nil {
		i.badRequest(w, err)
		return
	}

	var books []entity.Book

	if phrase := r.URL.Query().Get("phrase"); phrase != "" {
		books, err = i.catalog.FindBooks(r.Context(), phrase, start, end)
	} else {
		books, err = i.catalog.ListBooks(r.Context(), start, end)
	}

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, books)
}

// updateBook never touches the amount, that column belongs to the
// lending flow.
func (i *implementation) updateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	var req bookRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		i.badRequest(w, err)
		return
	}

	if err = req.Validate(); log.ErrorData(i.logger, err, log.UpdateData, "Got invalid request", traceID, "book", id) {
		span.RecordError(err)
		i.badRequest(w, err)
		return
	}

	book, err := i.catalog.UpdateBook(ctx, id, req.Name, req.Description, req.PublishYear)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, book)
}

func (i *implementation) deleteBook(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	book, err := i.catalog.DeleteBook(r.Context(), id)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, book)
}

func (i *implementation) unlinkBookAuthors(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	count, err := i.catalog.UnlinkBookAuthors(r.Context(), id)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, countResponse{Count: count})
}

func (i *implementation) unlinkBookGenres(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	count, err := i.catalog.UnlinkBookGenres(r.Context(), id)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, countResponse{Count: count})
}

func (i *implementation) purgeBookLoans(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	count, err := i.catalog.PurgeBookReturnedLoans(r.Context(), id)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, countResponse{Count: count})
}

func (i *implementation) bookAuthors(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	start, end, err := parseRange(r)
	if err != nil {
		i.badRequest(w, err)
		return
	}

	authors, err := i.queries.BookAuthors(r.Context(), id, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, authors)
}

func (i *implementation) bookGenres(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	start, end, err := parseRange(r)
	if err != nil {
		i.badRequest(w, err)
		return
	}

	genres, err := i.queries.BookGenres(r.Context(), id, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, genres)
}

func (i *implementation) bookReaders(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	start, end, err := parseRange(r)
	if err != nil {
		i.badRequest(w, err)
		return
	}

	returned, err := parseReturned(r)
	if err != nil {
		i.badRequest(w, err)
		return
	}

	readers, err := i.queries.BookReaders(r.Context(), id, returned, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, readers)
}
