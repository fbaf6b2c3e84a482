package controller

import (
	"encoding/json"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const dateLayout = "2006-01-02"

// staffRoles guard catalog mutations. Membership only, there is no
// role hierarchy.
var staffRoles = []entity.Role{entity.RoleAdmin, entity.RoleSuperAdmin}

type authorRequest struct {
	Name      string `json:"name"`
	Biography string `json:"biography"`
	Born      string `json:"born"`
}

func (a authorRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required, validation.Length(1, 512)),
		validation.Field(&a.Born, validation.Required, validation.Date(dateLayout)),
	)
}

func (i *implementation) createAuthor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	var req authorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		i.badRequest(w, err)
		return
	}

	if err := req.Validate(); log.ErrorData(i.logger, err, log.CreateData, "Got invalid request", traceID, "author", 0) {
		span.SetAttributes(attribute.String("author_name", req.Name))
		span.RecordError(err)
		i.badRequest(w, err)
		return
	}

	born, _ := time.Parse(dateLayout, req.Born)
	author, err := i.catalog.CreateAuthor(ctx, req.Name, req.Biography, born)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusCreated, author)
}

func (i *implementation) getAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	author, err := i.catalog.GetAuthor(r.Context(), id)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, author)
}

func (i *implementation) listAuthors(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r)
	if err != nil {
		i.badRequest(w, err)
		return
	}

	var authors []entity.Author

	if phrase := r.URL.Query().Get("phrase"); phrase != "" {
		authors, err = i.catalog.FindAuthors(r.Context(), phrase, start, end)
	} else {
		authors, err = i.catalog.ListAuthors(r.Context(), start, end)
	}

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, authors)
}

func (i *implementation) updateAuthor(w http.ResponseWriter, r *http.Request) {
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

	var req authorRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		i.badRequest(w, err)
		return
	}

	if err = req.Validate(); log.ErrorData(i.logger, err, log.UpdateData, "Got invalid request", traceID, "author", id) {
		span.RecordError(err)
		i.badRequest(w, err)
		return
	}

	born, _ := time.Parse(dateLayout, req.Born)
	author, err := i.catalog.UpdateAuthor(ctx, id, req.Name, req.Biography, born)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, author)
}

func (i *implementation) deleteAuthor(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	author, err := i.catalog.DeleteAuthor(r.Context(), id)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, author)
}

func (i *implementation) linkAuthorBook(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	idAuthor, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	idBook, err := parseID(r, "bookID")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	if err = i.catalog.LinkAuthorBook(r.Context(), idAuthor, idBook); err != nil {
		i.convertErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (i *implementation) unlinkAuthorBook(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	idAuthor, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	idBook, err := parseID(r, "bookID")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	count, err := i.catalog.UnlinkAuthorBook(r.Context(), idAuthor, idBook)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, countResponse{Count: count})
}

func (i *implementation) authorBooks(w http.ResponseWriter, r *http.Request) {
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

	books, err := i.queries.AuthorBooks(r.Context(), id, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, books)
}

func (i *implementation) authorGenres(w http.ResponseWriter, r *http.Request) {
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

	genres, err := i.queries.AuthorGenres(r.Context(), id, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, genres)
}

func (i *implementation) authorReaders(w http.ResponseWriter, r *http.Request) {
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

	readers, err := i.queries.AuthorReaders(r.Context(), id, returned, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, readers)
}
