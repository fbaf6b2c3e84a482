package controller

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/project/lending/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateAuthorEndpoint(t *testing.T) {
	t.Parallel()

	validBody := `{"name":"Leo Tolstoy","biography":"novelist","born":"1828-09-09"}`

	tests := []struct {
		name       string
		callerID   string
		role       entity.Role
		forbidden  bool
		body       string
		calls      bool
		wantStatus int
	}{
		{
			name:       "admin creates an author",
			callerID:   "1",
			role:       entity.RoleAdmin,
			body:       validBody,
			calls:      true,
			wantStatus: http.StatusCreated,
		},

		{
			name:       "super admin creates an author",
			callerID:   "1",
			role:       entity.RoleSuperAdmin,
			body:       validBody,
			calls:      true,
			wantStatus: http.StatusCreated,
		},

		{
			name:       "plain user is rejected",
			callerID:   "2",
			forbidden:  true,
			body:       validBody,
			wantStatus: http.StatusForbidden,
		},

		{
			name:       "anonymous caller is rejected",
			callerID:   "",
			body:       validBody,
			wantStatus: http.StatusUnauthorized,
		},

		{
			name:       "missing name",
			callerID:   "1",
			role:       entity.RoleAdmin,
			body:       `{"biography":"novelist","born":"1828-09-09"}`,
			wantStatus: http.StatusBadRequest,
		},

		{
			name:       "unparsable birth date",
			callerID:   "1",
			role:       entity.RoleAdmin,
			body:       `{"name":"Leo Tolstoy","born":"September 9"}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, service := initServiceTest(t)

			switch {
			case tt.forbidden:
				expectForbidden(m, 2)
			case tt.callerID != "":
				expectCaller(m, 1, tt.role)
			}

			if tt.calls {
				m.catalog.EXPECT().
					CreateAuthor(gomock.Any(), "Leo Tolstoy", "novelist",
						time.Date(1828, time.September, 9, 0, 0, 0, 0, time.UTC)).
					Return(entity.Author{
						ID:   1,
						Name: "Leo Tolstoy",
					}, nil)
			}

			rr := perform(service, http.MethodPost, "/author", tt.callerID, tt.body)
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestListAuthorsEndpoint(t *testing.T) {
	t.Parallel()

	authors := []entity.Author{
		{ID: 2, Name: "Anton Chekhov"},
		{ID: 1, Name: "Leo Tolstoy"},
	}

	tests := []struct {
		name       string
		target     string
		phrase     string
		want       []entity.Author
		wantStatus int
	}{
		{
			name:       "default window",
			target:     "/author",
			want:       authors,
			wantStatus: http.StatusOK,
		},

		{
			name:       "search by phrase",
			target:     "/author?phrase=Tolstoy",
			phrase:     "Tolstoy",
			want:       authors[1:],
			wantStatus: http.StatusOK,
		},

		{
			name:       "empty page reads as absence",
			target:     "/author?start=500&end=600",
			want:       []entity.Author{},
			wantStatus: http.StatusNotFound,
		},

		{
			name:       "broken window",
			target:     "/author?start=abc",
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, service := initServiceTest(t)

			if tt.wantStatus != http.StatusBadRequest {
				if tt.phrase != "" {
					m.catalog.EXPECT().
						FindAuthors(gomock.Any(), tt.phrase, gomock.Any(), gomock.Any()).
						Return(tt.want, nil)
				} else {
					m.catalog.EXPECT().
						ListAuthors(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(tt.want, nil)
				}
			}

			rr := perform(service, http.MethodGet, tt.target, "", "")
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus == http.StatusOK {
				var got []entity.Author
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDeleteAuthorEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
		wantError  string
	}{
		{
			name:       "free author is deleted",
			deleteErr:  nil,
			wantStatus: http.StatusOK,
		},

		{
			name:       "linked author is kept",
			deleteErr:  entity.Conflictf("can not delete author, because there are %d links to books", 3),
			wantStatus: http.StatusConflict,
			wantError:  "conflict: can not delete author, because there are 3 links to books",
		},

		{
			name:       "unknown author",
			deleteErr:  entity.ErrAuthorNotFound,
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, service := initServiceTest(t)
			expectCaller(m, 1, entity.RoleAdmin)
			m.catalog.EXPECT().
				DeleteAuthor(gomock.Any(), int64(5)).
				Return(entity.Author{ID: 5}, tt.deleteErr)

			rr := perform(service, http.MethodDelete, "/author/5", "1", "")
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantError != "" {
				require.Equal(t, tt.wantError, decodeError(t, rr))
			}
		})
	}
}

func TestLinkAuthorBookEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		linkErr    error
		wantStatus int
	}{
		{
			name:       "link created",
			linkErr:    nil,
			wantStatus: http.StatusNoContent,
		},

		{
			name:       "dangling reference",
			linkErr:    entity.ErrBookNotFound,
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, service := initServiceTest(t)
			expectCaller(m, 1, entity.RoleAdmin)
			m.catalog.EXPECT().
				LinkAuthorBook(gomock.Any(), int64(5), int64(7)).
				Return(tt.linkErr)

			rr := perform(service, http.MethodPost, "/author/5/book/7", "1", "")
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestAuthorReadersEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		callerID   string
		forbidden  bool
		wantStatus int
	}{
		{
			name:       "staff sees the readers",
			callerID:   "1",
			wantStatus: http.StatusOK,
		},

		{
			name:       "plain user is rejected",
			callerID:   "2",
			forbidden:  true,
			wantStatus: http.StatusForbidden,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, service := initServiceTest(t)

			if tt.forbidden {
				expectForbidden(m, 2)
			} else {
				expectCaller(m, 1, entity.RoleAdmin)
				m.queries.EXPECT().
					AuthorReaders(gomock.Any(), int64(5), false, gomock.Any(), gomock.Any()).
					Return([]entity.User{{ID: 42, Name: "reader"}}, nil)
			}

			rr := perform(service, http.MethodGet, "/author/5/readers", tt.callerID, "")
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
