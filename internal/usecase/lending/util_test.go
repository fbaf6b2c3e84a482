package lending

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/project/lending/internal/usecase/lending/mocks"
	"go.uber.org/mock/gomock"
)

var errInternalStore = errors.New("internal error")

// fixedClock pins today so date arithmetic in tests is deterministic.
type fixedClock struct {
	today time.Time
}

func (c fixedClock) Today() time.Time {
	return c.today
}

var testToday = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

const (
	testMaxActiveLoans = 3
	testLoanPeriodDays = 14
)

type testRepos struct {
	authors     *mocks.MockAuthorsRepository
	genres      *mocks.MockGenresRepository
	books       *mocks.MockBooksRepository
	users       *mocks.MockUsersRepository
	queries     *mocks.MockQueriesRepository
	authorBooks *mocks.MockLinksRepository
	genreBooks  *mocks.MockLinksRepository
	loans       *mocks.MockLoansRepository
	outbox      *mocks.MockOutboxRepository
	transactor  *mocks.MockTransactor
}

func initLendingTest(t *testing.T) (context.Context, *testRepos, *lendingImpl) {
	t.Helper()
	ctrl := gomock.NewController(t)
	r := &testRepos{
		authors:     mocks.NewMockAuthorsRepository(ctrl),
		genres:      mocks.NewMockGenresRepository(ctrl),
		books:       mocks.NewMockBooksRepository(ctrl),
		users:       mocks.NewMockUsersRepository(ctrl),
		queries:     mocks.NewMockQueriesRepository(ctrl),
		authorBooks: mocks.NewMockLinksRepository(ctrl),
		genreBooks:  mocks.NewMockLinksRepository(ctrl),
		loans:       mocks.NewMockLoansRepository(ctrl),
		outbox:      mocks.NewMockOutboxRepository(ctrl),
		transactor:  mocks.NewMockTransactor(ctrl),
	}

	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}

	uc := New(logger, Config{
		MaxActiveLoans: testMaxActiveLoans,
		LoanPeriodDays: testLoanPeriodDays,
	}, fixedClock{today: testToday}, Repositories{
		Authors:     r.authors,
		Genres:      r.genres,
		Books:       r.books,
		Users:       r.users,
		Queries:     r.queries,
		AuthorBooks: r.authorBooks,
		GenreBooks:  r.genreBooks,
		Loans:       r.loans,
		Outbox:      r.outbox,
		Transactor:  r.transactor,
	})

	return context.Background(), r, uc
}

// expectTx makes every WithTx call run its function against the mocks,
// the way the real transactor would.
func expectTx(r *testRepos) {
	r.transactor.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, function func(ctx context.Context) error) error {
			return function(ctx)
		},
	).AnyTimes()
}
