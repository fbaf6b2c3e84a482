package controller

import (
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/log"
	"go.opentelemetry.io/otel/trace"
)

type genreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (g genreRequest) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Name, validation.Required, validation.Length(1, 512)),
	)
}

func (i *implementation) createGenre(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	var req genreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		i.badRequest(w, err)
		return
	}

	if err := req.Validate(); log.ErrorData(i.logger, err, log.CreateData, "Got invalid request", traceID, "genre", 0) {
		span.RecordError(err)
		i.badRequest(w, err)
		return
	}

	genre, err := i.catalog.CreateGenre(ctx, req.Name, req.Description)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusCreated, genre)
}

func (i *implementation) getGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	genre, err := i.catalog.GetGenre(r.Context(), id)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, genre)
}

func (i *implementation) listGenres(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRange(r)
	if err != nil {
		i.badRequest(w, err)
		return
	}

	var genres []entity.Genre

	if phrase := r.URL.Query().Get("phrase"); phrase != "" {
		genres, err = i.catalog.FindGenres(r.Context(), phrase, start, end)
	} else {
		genres, err = i.catalog.ListGenres(r.Context(), start, end)
	}

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, genres)
}

func (i *implementation) updateGenre(w http.ResponseWriter, r *http.Request) {
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

	var req genreRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		i.badRequest(w, err)
		return
	}

	if err = req.Validate(); log.ErrorData(i.logger, err, log.UpdateData, "Got invalid request", traceID, "genre", id) {
		span.RecordError(err)
		i.badRequest(w, err)
		return
	}

	genre, err := i.catalog.UpdateGenre(ctx, id, req.Name, req.Description)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, genre)
}

func (i *implementation) deleteGenre(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	genre, err := i.catalog.DeleteGenre(r.Context(), id)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, genre)
}

func (i *implementation) linkGenreBook(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	idGenre, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	idBook, err := parseID(r, "bookID")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	if err = i.catalog.LinkGenreBook(r.Context(), idGenre, idBook); err != nil {
		i.convertErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (i *implementation) unlinkGenreBook(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	idGenre, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	idBook, err := parseID(r, "bookID")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	count, err := i.catalog.UnlinkGenreBook(r.Context(), idGenre, idBook)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, countResponse{Count: count})
}

func (i *implementation) genreBooks(w http.ResponseWriter, r *http.Request) {
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

	books, err := i.queries.GenreBooks(r.Context(), id, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, books)
}

func (i *implementation) genreAuthors(w http.ResponseWriter, r *http.Request) {
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

	authors, err := i.queries.GenreAuthors(r.Context(), id, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, authors)
}

func (i *implementation) genreReaders(w http.ResponseWriter, r *http.Request) {
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

	readers, err := i.queries.GenreReaders(r.Context(), id, returned, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, readers)
}
