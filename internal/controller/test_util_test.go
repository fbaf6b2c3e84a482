package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/project/lending/internal/controller/mocks"

	"github.com/project/lending/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errInternal = errors.New("internal error")
	tooLongName = strings.Repeat("Too long name", 40)
)

type serviceMocks struct {
	catalog *mocks.MockCatalogUseCase
	users   *mocks.MockUsersUseCase
	loans   *mocks.MockLoansUseCase
	queries *mocks.MockQueriesUseCase
	gate    *mocks.MockAuthGate
}

func initServiceTest(t *testing.T) (*serviceMocks, *implementation) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		catalog: mocks.NewMockCatalogUseCase(ctrl),
		users:   mocks.NewMockUsersUseCase(ctrl),
		loans:   mocks.NewMockLoansUseCase(ctrl),
		queries: mocks.NewMockQueriesUseCase(ctrl),
		gate:    mocks.NewMockAuthGate(ctrl),
	}

	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}

	service := New(logger, m.catalog, m.users, m.loans, m.queries, m.gate, NewHeaderCredentials())
	return m, service
}

// perform routes one request through the full router so that gating,
// URL params and status mapping are exercised together.
func perform(s *implementation, method, target, callerID, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if callerID != "" {
		req.Header.Set("X-User-ID", callerID)
	}

	rr := httptest.NewRecorder()
	s.Routes().ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Error
}

func expectCaller(m *serviceMocks, id int64, role entity.Role) {
	m.gate.EXPECT().
		Require(gomock.Any(), id, gomock.Any()).
		Return(entity.User{ID: id, RoleID: role}, nil)
}

func expectForbidden(m *serviceMocks, id int64) {
	m.gate.EXPECT().
		Require(gomock.Any(), id, gomock.Any()).
		Return(entity.User{}, entity.ErrForbidden)
}

func Test_HeaderCredentials_CallerID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		want       int64
		errRequire error
	}{
		{
			name:       "numeric id",
			header:     "42",
			want:       42,
			errRequire: nil,
		},

		{
			name:       "missing header",
			header:     "",
			errRequire: entity.ErrUnauthenticated,
		},

		{
			name:       "garbage header",
			header:     "forty-two",
			errRequire: entity.ErrUnauthenticated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("X-User-ID", tt.header)
			}

			id, err := NewHeaderCredentials().CallerID(req)
			require.ErrorIs(t, err, tt.errRequire)
			if tt.errRequire == nil {
				require.Equal(t, tt.want, id)
			}
		})
	}
}
