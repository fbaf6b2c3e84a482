package lending

import (
	"time"

	"github.com/project/lending/internal/usecase/repository"
	"go.uber.org/zap"
)

// Clock supplies "today" for loan date arithmetic. Injectable so the date
// checks are deterministic under test.
type Clock interface {
	Today() time.Time
}

type SystemClock struct{}

func (SystemClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Config carries the lending policy knobs. LoanPeriodDays defaults to 14
// at the configuration layer, not here.
type Config struct {
	MaxActiveLoans int64
	LoanPeriodDays int
}

type Repositories struct {
	Authors     repository.AuthorsRepository
	Genres      repository.GenresRepository
	Books       repository.BooksRepository
	Users       repository.UsersRepository
	Queries     repository.QueriesRepository
	AuthorBooks repository.LinksRepository
	GenreBooks  repository.LinksRepository
	Loans       repository.LoansRepository
	Outbox      repository.OutboxRepository
	Transactor  repository.Transactor
}

var _ CatalogUseCase = (*lendingImpl)(nil)
var _ UsersUseCase = (*lendingImpl)(nil)
var _ LoansUseCase = (*lendingImpl)(nil)
var _ QueriesUseCase = (*lendingImpl)(nil)

type lendingImpl struct {
	logger *zap.Logger
	cfg    Config
	clock  Clock
	repo   Repositories
}

func New(logger *zap.Logger, cfg Config, clock Clock, repo Repositories) *lendingImpl {
	return &lendingImpl{
		logger: logger,
		cfg:    cfg,
		clock:  clock,
		repo:   repo,
	}
}
