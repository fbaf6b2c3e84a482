package outbox

import (
	"context"
	"sync"
	"time"

	"github.com/project/lending/config"
	"github.com/project/lending/internal/usecase/repository"
	"github.com/project/lending/pkg/logger"
	"go.uber.org/zap"
)

type (
	// GlobalHandler routes an outbox kind (loan event, verification
	// mail) to its delivery function.
	GlobalHandler = func(kind repository.OutboxKind) (KindHandler, error)
	KindHandler   = func(ctx context.Context, data []byte) error

	Repository interface {
		GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]repository.OutboxData, error)
		MarkAs(ctx context.Context, idempotencyKeys []string, s repository.Status) error
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}

	Outbox interface {
		Start(ctx context.Context, workers int, batchSize int, waitTime time.Duration, inProgressTTL time.Duration)
	}
)

var _ Outbox = (*outboxImpl)(nil)

type outboxImpl struct {
	logger           *zap.Logger
	outboxRepository Repository
	globalHandler    GlobalHandler
	cfg              *config.Config
	transactor       Transactor
}

func New(
	logger *zap.Logger,
	outboxRepository Repository,
	globalHandler GlobalHandler,
	cfg *config.Config,
	transactor Transactor,
) *outboxImpl {
	return &outboxImpl{
		logger:           logger,
		outboxRepository: outboxRepository,
		globalHandler:    globalHandler,
		cfg:              cfg,
		transactor:       transactor,
	}
}

func (o *outboxImpl) Start(
	ctx context.Context,
	workers int,
	batchSize int,
	waitTime time.Duration,
	inProgressTTL time.Duration,
) {
	wg := new(sync.WaitGroup)

	for workerID := 1; workerID <= workers; workerID++ {
		wg.Add(1)
		go o.worker(ctx, wg, batchSize, waitTime, inProgressTTL)
	}
}

// worker claims a batch inside one transaction, delivers each message
// and marks the outcome. A failed delivery goes back to CREATED and is
// retried until its attempt budget is spent.
func (o *outboxImpl) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	batchSize int,
	waitTime time.Duration,
	inProgressTTL time.Duration,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		default:
			time.Sleep(waitTime)
			select {
			case <-ctx.Done():
				return
			default:
				if !o.cfg.Outbox.Enabled {
					continue
				}

				err := o.transactor.WithTx(ctx, func(ctx context.Context) error {
					messages, err := o.outboxRepository.GetMessages(ctx, batchSize, inProgressTTL)

					if logger.CheckError(err, o.logger, "can not fetch messages from outbox", zap.Error(err)) {
						return err
					}
					logger.MakeDebug(o.logger, "messages fetched", zap.Int("size", len(messages)))

					successKeys := make([]string, 0, len(messages))
					failKeys := make([]string, 0, len(messages))
					for i := 0; i < len(messages); i++ {
						message := messages[i]
						key := message.IdempotencyKey

						kindHandler, taskErr := o.globalHandler(message.Kind)

						if logger.CheckError(taskErr, o.logger, "unexpected kind", zap.Error(taskErr)) {
							failKeys = append(failKeys, key)
							continue
						}

						taskErr = kindHandler(ctx, message.RawData)

						if logger.CheckError(taskErr, o.logger, "kind handler error", zap.Error(taskErr)) {
							failKeys = append(failKeys, key)
							continue
						}

						successKeys = append(successKeys, key)
					}

					err = o.outboxRepository.MarkAs(ctx, successKeys, repository.Success)
					if logger.CheckError(err, o.logger, "mark as 'SUCCESS' outbox error", zap.Error(err)) {
						return err
					}

					err = o.outboxRepository.MarkAs(ctx, failKeys, repository.Created)
					if logger.CheckError(err, o.logger, "mark as 'CREATED' for failed task outbox error", zap.Error(err)) {
						return err
					}

					return nil
				})
				logger.CheckError(err, o.logger, "worker stage error", zap.Error(err))
			}
		}
	}
}
