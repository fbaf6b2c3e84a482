package controller

import (
	"encoding/json"
	"net/http"
	"time"
)

func (i *implementation) adminGetUser(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	user, err := i.users.GetUser(r.Context(), id)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, user)
}

func (i *implementation) adminUpdateUser(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
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
	user, err := i.users.UpdateUser(r.Context(), id, req.Name, req.Email, born)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, user)
}

func (i *implementation) adminDeleteUser(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	user, err := i.users.DeleteUser(r.Context(), id)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, user)
}

func (i *implementation) adminUserBooks(w http.ResponseWriter, r *http.Request) {
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

	books, err := i.queries.UserBooks(r.Context(), id, returned, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, books)
}

func (i *implementation) adminUserGenres(w http.ResponseWriter, r *http.Request) {
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

	genres, err := i.queries.UserGenres(r.Context(), id, returned, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, genres)
}

func (i *implementation) adminUserAuthors(w http.ResponseWriter, r *http.Request) {
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

	authors, err := i.queries.UserAuthors(r.Context(), id, returned, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, authors)
}

func (i *implementation) adminPurgeUserLoans(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
		i.convertErr(w, err)
		return
	}

	id, err := parseID(r, "id")
	if err != nil {
		i.badRequest(w, err)
		return
	}

	count, err := i.users.PurgeUserReturnedLoans(r.Context(), id)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeJSON(i.logger, w, http.StatusOK, countResponse{Count: count})
}

// overdueReaders lists users whose loans ran past the deadline:
// closed loans judged by their return date, open ones by today.
func (i *implementation) overdueReaders(w http.ResponseWriter, r *http.Request) {
	if _, err := i.require(r, staffRoles...); err != nil {
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

	readers, err := i.queries.OverdueReaders(r.Context(), returned, start, end)

	if err != nil {
		i.convertErr(w, err)
		return
	}

	writeList(i.logger, w, readers)
}
