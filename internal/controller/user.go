package controller

import (
	"encoding/json"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var TakeBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "lending_take_book_duration_ms",
	Help:    "Duration of TakeBook in ms",
	Buckets: prometheus.DefBuckets,
})

var ReturnBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "lending_return_book_duration_ms",
	Help:    "Duration of ReturnBook in ms",
	Buckets: prometheus.DefBuckets,
})

var RegisterUserDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "lending_register_user_duration_ms",
	Help:    "Duration of RegisterUser in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(TakeBookDuration)
	prometheus.MustRegister(ReturnBookDuration)
	prometheus.MustRegister(RegisterUserDuration)
}

// anyRole admits every authenticated caller.
var anyRole = []entity.Role{entity.RoleUser, entity.RoleAdmin, entity.RoleSuperAdmin}

const minPasswordLength = 8

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Born     string `json:"born"`
}

func (u registerRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.Required, validation.Length(1, 512)),
		validation.Field(&u.Email, validation.Required, is.Email),
		validation.Field(&u.Password, validation.Required, validation.Length(minPasswordLength, 128)),
		validation.Field(&u.Born, validation.Required, validation.Date(dateLayout)),
	)
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Born  string `json:"born"`
}

func (u updateUserRequest) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.Required, validation.Length(1, 512)),
		validation.Field(&u.Email, validation.Required, is.Email),
		validation.Field(&u.Born, validation.Required, validation.Date(dateLayout)),
	)
}

func (i *implementation) registerUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		RegisterUserDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := r.Context()

	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		i.badRequest(w, err)
		return
	}

	if err := req.Validate(); log.ErrorRegisterUser(i.logger, err, "Got invalid request", traceID, req.Email) {
		span.SetAttributes(attribute.String("email", req.Email))
		span.RecordError(err)
		i.badRequest(w, err)
		return
	}

	born, _ := time.Parse(dateLayout, req.Born)
	user, err := i.users.RegisterUser(ctx, req.Name, req.Email, req.Password, born)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusCreated, user)
}

type takeBookResponse struct {
	Book         entity.Book `json:"book"`
	MustReturnAt string      `json:"must_return_at"`
}

func (i *implementation) takeBook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		TakeBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := r.Context()

	caller, err := i.require(r, anyRole...)
	if err != nil {
		i.convertErr(w, err)
		return
	}

	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	idBook, err := parseID(r, "bookID")
	if log.ErrorTakeBook(i.logger, err, "Got invalid book id", traceID, caller.ID, idBook) {
		span.RecordError(err)
		i.badRequest(w, err)
		return
	}

	span.SetAttributes(attribute.Int64("user_id", caller.ID))
	span.SetAttributes(attribute.Int64("book_id", idBook))

	book, mustReturnAt, err := i.loans.TakeBook(ctx, caller.ID, idBook)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, takeBookResponse{
		Book:         book,
		MustReturnAt: mustReturnAt.Format(dateLayout),
	})
}

func (i *implementation) returnBook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		ReturnBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := r.Context()

	caller, err := i.require(r, anyRole...)
	if err != nil {
		i.convertErr(w, err)
		return
	}

	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	idBook, err := parseID(r, "bookID")
	if log.ErrorReturnBook(i.logger, err, "Got invalid book id", traceID, caller.ID, idBook) {
		span.RecordError(err)
		i.badRequest(w, err)
		return
	}

	span.SetAttributes(attribute.Int64("user_id", caller.ID))
	span.SetAttributes(attribute.Int64("book_id", idBook))

	book, err := i.loans.ReturnBook(ctx, caller.ID, idBook)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, book)
}

func (i *implementation) getMe(w http.ResponseWriter, r *http.Request) {
	caller, err := i.require(r, anyRole...)
	if err != nil {
		i.convertErr(w, err)
		return
	}

	user, err := i.users.GetUser(r.Context(), caller.ID)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, user)
}

func (i *implementation) updateMe(w http.ResponseWriter, r *http.Request) {
	caller, err := i.require(r, anyRole...)
	if err != nil {
		i.convertErr(w, err)
		return
	}

	var req updateUserRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		i.badRequest(w, err)
		return
	}

	if err = req.Validate(); err != nil {
		i.badRequest(w, err)
		return
	}

	born, _ := time.Parse(dateLayout, req.Born)
	user, err := i.users.UpdateUser(r.Context(), caller.ID, req.Name, req.Email, born)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, user)
}

func (i *implementation) myBooks(w http.ResponseWriter, r *http.Request) {
	caller, err := i.require(r, anyRole...)
	if err != nil {
		i.convertErr(w, err)
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

	books, err := i.queries.UserBooks(r.Context(), caller.ID, returned, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, books)
}

func (i *implementation) myGenres(w http.ResponseWriter, r *http.Request) {
	caller, err := i.require(r, anyRole...)
	if err != nil {
		i.convertErr(w, err)
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

	genres, err := i.queries.UserGenres(r.Context(), caller.ID, returned, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, genres)
}

func (i *implementation) myAuthors(w http.ResponseWriter, r *http.Request) {
	caller, err := i.require(r, anyRole...)
	if err != nil {
		i.convertErr(w, err)
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

	authors, err := i.queries.UserAuthors(r.Context(), caller.ID, returned, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, authors)
}

func (i *implementation) purgeMyLoans(w http.ResponseWriter, r *http.Request) {
	caller, err := i.require(r, anyRole...)
	if err != nil {
		i.convertErr(w, err)
		return
	}

	count, err := i.users.PurgeUserReturnedLoans(r.Context(), caller.ID)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, countResponse{Count: count})
}
