package auth

import (
	"context"

	"github.com/project/lending/internal/entity"
	"github.com/project/lending/pkg/logger"
	"go.uber.org/zap"
)

type UsersRepository interface {
	GetUser(ctx context.Context, idUser int64) (entity.User, error)
}

// Allowed reports whether role belongs to the required set. Membership
// only: S_ADMIN does not implicitly cover ADMIN operations.
func Allowed(role entity.Role, required ...entity.Role) bool {
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

type Gate struct {
	logger *zap.Logger
	users  UsersRepository
}

func NewGate(logger *zap.Logger, users UsersRepository) *Gate {
	return &Gate{
		logger: logger,
		users:  users,
	}
}

// Require loads the caller and permits the operation iff their role is a
// member of the required set. A resolvable identity with the wrong role
// is Forbidden; a dangling identity means the credential no longer names
// a user and is Unauthenticated.
func (g *Gate) Require(ctx context.Context, callerID int64, required ...entity.Role) (entity.User, error) {
	user, err := g.users.GetUser(ctx, callerID)

	if logger.CheckError(err, g.logger, "can not load caller", zap.Int64("caller_id", callerID), zap.Error(err)) {
		return entity.User{}, entity.ErrUnauthenticated
	}

	if !Allowed(user.RoleID, required...) {
		logger.MakeDebug(g.logger, "caller role not in required set",
			zap.Int64("caller_id", callerID),
			zap.String("role", user.RoleID.String()))
		return entity.User{}, entity.ErrForbidden
	}

	return user, nil
}
