package lending

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/log"
	"github.com/project/lending/internal/usecase/repository"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
)

type verifyMail struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	VerifyCode string `json:"verify_code"`
}

// RegisterUser creates an unverified reader. The password is stored as a
// bcrypt hash and the verification mail request rides the same
// transaction through the outbox; actual delivery and token issuance are
// outside this service.
func (l *lendingImpl) RegisterUser(ctx context.Context, name, email, password string, born time.Time) (entity.User, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoRegisterUser(l.logger, "start of register user", traceID, email)

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return entity.User{}, err
	}

	var user entity.User
	err = l.repo.Transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		user, txErr = l.repo.Users.CreateUser(ctx, entity.User{
			Name:           name,
			HashedPassword: string(hashed),
			Email:          email,
			RoleID:         entity.RoleUser,
			Born:           born,
			Verified:       false,
			VerifyCode:     uuid.NewString(),
		})

		if txErr != nil {
			return txErr
		}

		serialized, txErr := json.Marshal(verifyMail{
			Email:      user.Email,
			Name:       user.Name,
			VerifyCode: user.VerifyCode,
		})

		if txErr != nil {
			return txErr
		}

		idempotencyKey := fmt.Sprintf("%s_%d", repository.OutboxKindUserRegistered, user.ID)
		return l.repo.Outbox.SendMessage(ctx, idempotencyKey, repository.OutboxKindUserRegistered, serialized)
	})

	if log.ErrorRegisterUser(l.logger, err, "failed register user", traceID, email) {
		span.RecordError(err)
		return entity.User{}, err
	}

	span.SetAttributes(attribute.Int64("user_id", user.ID))
	log.InfoRegisterUser(l.logger, "registered the user", traceID, email, user.ID)
	return user, nil
}

func (l *lendingImpl) GetUser(ctx context.Context, idUser int64) (entity.User, error) {
	return l.repo.Users.GetUser(ctx, idUser)
}

func (l *lendingImpl) UpdateUser(ctx context.Context, idUser int64, name, email string, born time.Time) (entity.User, error) {
	return l.repo.Users.UpdateUser(ctx, idUser, map[string]any{
		"name":  name,
		"email": email,
		"born":  born,
	})
}

// DeleteUser refuses while the reader holds books or any loan history
// remains; history is purged separately and deliberately.
func (l *lendingImpl) DeleteUser(ctx context.Context, idUser int64) (entity.User, error) {
	traceID := trace.SpanFromContext(ctx).SpanContext().TraceID().String()

	taken, err := l.repo.Queries.UserBooks(ctx, idUser, false, 0, 1)

	if err != nil {
		return entity.User{}, err
	}

	if len(taken) > 0 {
		return entity.User{}, entity.Conflictf("can not delete user, because there are %d taken books", len(taken))
	}

	linked, err := l.repo.Loans.CountLeftLinks(ctx, idUser)

	if err != nil {
		return entity.User{}, err
	}

	if linked > 0 {
		return entity.User{}, entity.Conflictf("can not delete user, because there are %d returned books", linked)
	}

	user, err := l.repo.Users.DeleteUser(ctx, idUser)

	if log.ErrorData(l.logger, err, log.DeleteData, "failed delete user", traceID, "user", idUser) {
		return entity.User{}, err
	}

	log.InfoData(l.logger, log.DeleteData, "deleted the user", traceID, "user", idUser)
	return user, nil
}

func (l *lendingImpl) PurgeUserReturnedLoans(ctx context.Context, idUser int64) (int64, error) {
	return l.repo.Loans.DeleteLeftLinksReturned(ctx, idUser, true)
}
