package auth

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/usecase/lending/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAllowed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		role     entity.Role
		required []entity.Role
		want     bool
	}{
		{
			name:     "member of single-role set",
			role:     entity.RoleAdmin,
			required: []entity.Role{entity.RoleAdmin},
			want:     true,
		},
		{
			name:     "member of wider set",
			role:     entity.RoleUser,
			required: []entity.Role{entity.RoleUser, entity.RoleAdmin, entity.RoleSuperAdmin},
			want:     true,
		},
		{
			name:     "user not in staff set",
			role:     entity.RoleUser,
			required: []entity.Role{entity.RoleAdmin, entity.RoleSuperAdmin},
			want:     false,
		},
		{
			// Membership only: the top role gets no implicit pass.
			name:     "super admin not in admin-only set",
			role:     entity.RoleSuperAdmin,
			required: []entity.Role{entity.RoleAdmin},
			want:     false,
		},
		{
			name:     "empty required set admits nobody",
			role:     entity.RoleSuperAdmin,
			required: nil,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Allowed(tt.role, tt.required...))
		})
	}
}

func initGateTest(t *testing.T) (context.Context, *mocks.MockUsersRepository, *Gate) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepository(ctrl)
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	return context.Background(), users, NewGate(logger, users)
}

func TestRequire(t *testing.T) {
	t.Parallel()

	const callerID = int64(7)

	tests := []struct {
		name       string
		caller     entity.User
		loadErr    error
		required   []entity.Role
		errRequire error
	}{
		{
			name:     "admin passes staff check",
			caller:   entity.User{ID: callerID, RoleID: entity.RoleAdmin},
			required: []entity.Role{entity.RoleAdmin, entity.RoleSuperAdmin},
		},
		{
			name:       "user is forbidden",
			caller:     entity.User{ID: callerID, RoleID: entity.RoleUser},
			required:   []entity.Role{entity.RoleAdmin, entity.RoleSuperAdmin},
			errRequire: entity.ErrForbidden,
		},
		{
			name:       "dangling identity is unauthenticated",
			loadErr:    entity.ErrUserNotFound,
			required:   []entity.Role{entity.RoleUser},
			errRequire: entity.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx, users, gate := initGateTest(t)

			users.EXPECT().GetUser(ctx, callerID).Return(tt.caller, tt.loadErr)

			caller, err := gate.Require(ctx, callerID, tt.required...)
			if tt.errRequire != nil {
				require.ErrorIs(t, err, tt.errRequire)
				require.Empty(t, caller)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.caller, caller)
		})
	}
}
