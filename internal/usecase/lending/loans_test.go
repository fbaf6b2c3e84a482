package lending

import (
	"context"
	"testing"
	"time"

	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/usecase/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testUserID = int64(42)
	testBookID = int64(7)
)

func activeLoan(bookID int64, mustReturnAt time.Time) entity.Loan {
	return entity.Loan{
		UserID:       testUserID,
		BookID:       bookID,
		GetAt:        mustReturnAt.AddDate(0, 0, -testLoanPeriodDays),
		MustReturnAt: mustReturnAt,
	}
}

func TestTakeBook(t *testing.T) {
	t.Parallel()
	ctx, r, s := initLendingTest(t)
	expectTx(r)

	r.loans.EXPECT().ActiveLoans(ctx, testUserID, int64(0), int64(testMaxActiveLoans)).Return(nil, nil)
	r.books.EXPECT().GetBookForUpdate(ctx, testBookID).Return(entity.Book{ID: testBookID, Amount: 2}, nil)
	r.books.EXPECT().ChangeBookAmount(ctx, testBookID, int64(-1)).Return(entity.Book{ID: testBookID, Amount: 1}, nil)
	r.loans.EXPECT().CreateLoan(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, loan entity.Loan) (entity.Loan, error) {
			loan.ID = 1
			return loan, nil
		})
	r.outbox.EXPECT().SendMessage(ctx, "loan_taken_1", repository.OutboxKindLoanTaken, gomock.Any()).Return(nil)

	book, dueAt, err := s.TakeBook(ctx, testUserID, testBookID)
	require.NoError(t, err)
	require.Equal(t, int64(1), book.Amount)
	require.Equal(t, testToday.AddDate(0, 0, testLoanPeriodDays), dueAt)
}

func TestTakeBookRefusals(t *testing.T) {
	t.Parallel()

	overdue := testToday.AddDate(0, 0, -1)
	future := testToday.AddDate(0, 0, 5)

	tests := []struct {
		name       string
		loans      []entity.Loan
		expectBook func(ctx context.Context, r *testRepos)
		wantErr    error
		wantMsg    string
	}{
		{
			// The duplicate holds an overdue copy of the very book and the
			// quota is full: the duplicate answer still wins.
			name: "duplicate beats quota and debt",
			loans: []entity.Loan{
				activeLoan(testBookID, overdue),
				activeLoan(100, future),
				activeLoan(101, future),
			},
			wantErr: entity.ErrConflict,
			wantMsg: "you already have this book",
		},
		{
			name: "quota full",
			loans: []entity.Loan{
				activeLoan(100, future),
				activeLoan(101, future),
				activeLoan(102, future),
			},
			wantErr: entity.ErrConflict,
			wantMsg: "you have too many books",
		},
		{
			// An overdue loan of a different book locks all lending.
			name: "debt lock",
			loans: []entity.Loan{
				activeLoan(100, overdue),
			},
			wantErr: entity.ErrConflict,
			wantMsg: "first, you must return overdue book",
		},
		{
			name:  "book does not exist",
			loans: nil,
			expectBook: func(ctx context.Context, r *testRepos) {
				r.books.EXPECT().GetBookForUpdate(ctx, testBookID).Return(entity.Book{}, entity.ErrBookNotFound)
			},
			wantErr: entity.ErrNotFound,
			wantMsg: "book not found",
		},
		{
			name:  "no copies left",
			loans: nil,
			expectBook: func(ctx context.Context, r *testRepos) {
				r.books.EXPECT().GetBookForUpdate(ctx, testBookID).Return(entity.Book{ID: testBookID, Amount: 0}, nil)
			},
			wantErr: entity.ErrConflict,
			wantMsg: "not enough copies of the book",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx, r, s := initLendingTest(t)
			expectTx(r)

			r.loans.EXPECT().ActiveLoans(ctx, testUserID, int64(0), int64(testMaxActiveLoans)).Return(tt.loans, nil)
			if tt.expectBook != nil {
				tt.expectBook(ctx, r)
			}

			book, _, err := s.TakeBook(ctx, testUserID, testBookID)
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorContains(t, err, tt.wantMsg)
			require.Empty(t, book)
		})
	}
}

func TestTakeBookStorageError(t *testing.T) {
	t.Parallel()
	ctx, r, s := initLendingTest(t)
	expectTx(r)

	r.loans.EXPECT().ActiveLoans(ctx, testUserID, int64(0), int64(testMaxActiveLoans)).Return(nil, errInternalStore)

	_, _, err := s.TakeBook(ctx, testUserID, testBookID)
	require.ErrorIs(t, err, errInternalStore)
}

func TestReturnBook(t *testing.T) {
	t.Parallel()
	ctx, r, s := initLendingTest(t)
	expectTx(r)

	notReturned := false
	loan := activeLoan(testBookID, testToday.AddDate(0, 0, 5))
	loan.ID = 9

	r.queries.EXPECT().UserActiveBook(ctx, testUserID, testBookID).Return(entity.Book{ID: testBookID}, nil)
	r.loans.EXPECT().GetLoan(ctx, testUserID, testBookID, &notReturned).Return(loan, nil)
	r.loans.EXPECT().CloseLoan(ctx, int64(9), testToday).DoAndReturn(
		func(_ context.Context, _ int64, returnedAt time.Time) (entity.Loan, error) {
			closed := loan
			closed.Returned = true
			closed.ReturnedAt = &returnedAt
			return closed, nil
		})
	r.books.EXPECT().ChangeBookAmount(ctx, testBookID, int64(1)).Return(entity.Book{ID: testBookID, Amount: 1}, nil)
	r.outbox.EXPECT().SendMessage(ctx, "loan_returned_9", repository.OutboxKindLoanReturned, gomock.Any()).Return(nil)

	book, err := s.ReturnBook(ctx, testUserID, testBookID)
	require.NoError(t, err)
	require.Equal(t, int64(1), book.Amount)
}

func TestReturnBookNotTaken(t *testing.T) {
	t.Parallel()
	ctx, r, s := initLendingTest(t)
	expectTx(r)

	r.queries.EXPECT().UserActiveBook(ctx, testUserID, testBookID).Return(entity.Book{}, entity.ErrBookNotFound)

	_, err := s.ReturnBook(ctx, testUserID, testBookID)
	require.ErrorIs(t, err, entity.ErrConflict)
	require.ErrorContains(t, err, "you have not this book")
}

func TestReturnBookStoreContradiction(t *testing.T) {
	t.Parallel()
	ctx, r, s := initLendingTest(t)
	expectTx(r)

	notReturned := false
	r.queries.EXPECT().UserActiveBook(ctx, testUserID, testBookID).Return(entity.Book{ID: testBookID}, nil)
	r.loans.EXPECT().GetLoan(ctx, testUserID, testBookID, &notReturned).Return(entity.Loan{}, entity.ErrLoanNotFound)

	_, err := s.ReturnBook(ctx, testUserID, testBookID)
	require.ErrorIs(t, err, entity.ErrInternal)
}

// Take, return, take again: the second take must create a fresh loan row
// instead of reviving the closed one.
func TestRetakeAfterReturn(t *testing.T) {
	t.Parallel()
	ctx, r, s := initLendingTest(t)
	expectTx(r)

	notReturned := false
	var loanIDs []int64
	nextLoanID := int64(0)

	r.loans.EXPECT().ActiveLoans(ctx, testUserID, int64(0), int64(testMaxActiveLoans)).Return(nil, nil).Times(2)
	r.books.EXPECT().GetBookForUpdate(ctx, testBookID).Return(entity.Book{ID: testBookID, Amount: 1}, nil).Times(2)
	r.books.EXPECT().ChangeBookAmount(ctx, testBookID, int64(-1)).Return(entity.Book{ID: testBookID, Amount: 0}, nil).Times(2)
	r.loans.EXPECT().CreateLoan(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, loan entity.Loan) (entity.Loan, error) {
			nextLoanID++
			loan.ID = nextLoanID
			loanIDs = append(loanIDs, loan.ID)
			return loan, nil
		}).Times(2)

	firstLoan := activeLoan(testBookID, testToday.AddDate(0, 0, testLoanPeriodDays))
	firstLoan.ID = 1
	r.queries.EXPECT().UserActiveBook(ctx, testUserID, testBookID).Return(entity.Book{ID: testBookID}, nil)
	r.loans.EXPECT().GetLoan(ctx, testUserID, testBookID, &notReturned).Return(firstLoan, nil)
	r.loans.EXPECT().CloseLoan(ctx, int64(1), testToday).Return(firstLoan, nil)
	r.books.EXPECT().ChangeBookAmount(ctx, testBookID, int64(1)).Return(entity.Book{ID: testBookID, Amount: 1}, nil)
	r.outbox.EXPECT().SendMessage(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	_, _, err := s.TakeBook(ctx, testUserID, testBookID)
	require.NoError(t, err)

	_, err = s.ReturnBook(ctx, testUserID, testBookID)
	require.NoError(t, err)

	_, _, err = s.TakeBook(ctx, testUserID, testBookID)
	require.NoError(t, err)

	require.Equal(t, []int64{1, 2}, loanIDs)
}
