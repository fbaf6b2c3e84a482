package lending

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/log"
	"github.com/project/lending/internal/usecase/repository"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TakeBook moves the (user, book) pair from NONE to ACTIVE. Every check
// and both writes run inside one transaction; the book row is locked
// before the amount check, so two takers of the last copy serialize and
// the loser sees amount == 0.
//
// Check order is fixed: duplicate, quota, debt-lock, existence,
// availability. Several conditions can hold at once and callers rely on
// which one wins.
func (l *lendingImpl) TakeBook(ctx context.Context, idUser, idBook int64) (entity.Book, time.Time, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("user_id", idUser), attribute.Int64("book_id", idBook))
	log.InfoTakeBook(l.logger, "start of take book", traceID, idUser, idBook)

	var book entity.Book
	var dueAt time.Time

	err := l.repo.Transactor.WithTx(ctx, func(ctx context.Context) error {
		loans, txErr := l.repo.Loans.ActiveLoans(ctx, idUser, 0, l.cfg.MaxActiveLoans)

		if txErr != nil {
			return txErr
		}

		if lo.ContainsBy(loans, func(loan entity.Loan) bool { return loan.BookID == idBook }) {
			return entity.Conflictf("you already have this book")
		}

		if int64(len(loans)) >= l.cfg.MaxActiveLoans {
			return entity.Conflictf("you have too many books")
		}

		today := l.clock.Today()

		if lo.SomeBy(loans, func(loan entity.Loan) bool { return loan.MustReturnAt.Before(today) }) {
			return entity.Conflictf("first, you must return overdue book")
		}

		locked, txErr := l.repo.Books.GetBookForUpdate(ctx, idBook)

		if txErr != nil {
			return txErr
		}

		if locked.Amount == 0 {
			return entity.Conflictf("not enough copies of the book")
		}

		book, txErr = l.repo.Books.ChangeBookAmount(ctx, idBook, -1)

		if txErr != nil {
			return txErr
		}

		loan, txErr := l.repo.Loans.CreateLoan(ctx, entity.Loan{
			UserID:       idUser,
			BookID:       idBook,
			GetAt:        today,
			MustReturnAt: today.AddDate(0, 0, l.cfg.LoanPeriodDays),
		})

		if txErr != nil {
			return txErr
		}

		dueAt = loan.MustReturnAt

		return l.sendLoanEvent(ctx, repository.OutboxKindLoanTaken, loan)
	})

	if log.ErrorTakeBook(l.logger, err, "failed take book", traceID, idUser, idBook) {
		span.RecordError(err)
		return entity.Book{}, time.Time{}, err
	}

	log.InfoTakeBook(l.logger, "took the book", traceID, idUser, idBook)
	return book, dueAt, nil
}

// ReturnBook moves the active loan of the pair to CLOSED and puts the
// copy back on the shelf, in one transaction.
func (l *lendingImpl) ReturnBook(ctx context.Context, idUser, idBook int64) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.Int64("user_id", idUser), attribute.Int64("book_id", idBook))
	log.InfoReturnBook(l.logger, "start of return book", traceID, idUser, idBook)

	var book entity.Book

	notReturned := false
	err := l.repo.Transactor.WithTx(ctx, func(ctx context.Context) error {
		_, txErr := l.repo.Queries.UserActiveBook(ctx, idUser, idBook)

		if errors.Is(txErr, entity.ErrNotFound) {
			return entity.Conflictf("you have not this book")
		}

		if txErr != nil {
			return txErr
		}

		loan, txErr := l.repo.Loans.GetLoan(ctx, idUser, idBook, &notReturned)

		if txErr != nil {
			// Step one just confirmed the loan exists; reaching this
			// branch means the store contradicted itself.
			return entity.Internalf("active loan of user %d for book %d vanished", idUser, idBook)
		}

		closed, txErr := l.repo.Loans.CloseLoan(ctx, loan.ID, l.clock.Today())

		if txErr != nil {
			return txErr
		}

		book, txErr = l.repo.Books.ChangeBookAmount(ctx, idBook, 1)

		if txErr != nil {
			return txErr
		}

		return l.sendLoanEvent(ctx, repository.OutboxKindLoanReturned, closed)
	})

	if log.ErrorReturnBook(l.logger, err, "failed return book", traceID, idUser, idBook) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoReturnBook(l.logger, "returned the book", traceID, idUser, idBook)
	return book, nil
}

func (l *lendingImpl) sendLoanEvent(ctx context.Context, kind repository.OutboxKind, loan entity.Loan) error {
	serialized, err := json.Marshal(loan)

	if err != nil {
		return err
	}

	idempotencyKey := fmt.Sprintf("%s_%d", kind, loan.ID)
	return l.repo.Outbox.SendMessage(ctx, idempotencyKey, kind, serialized)
}
