package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/project/lending/config"
	"github.com/project/lending/db"
	"github.com/project/lending/internal/controller"
	"github.com/project/lending/internal/entity"
	"github.com/project/lending/internal/usecase/auth"
	"github.com/project/lending/internal/usecase/lending"
	"github.com/project/lending/internal/usecase/outbox"
	"github.com/project/lending/internal/usecase/repository"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	shutDownSeconds        = 3
	dialerTimeoutSeconds   = 30
	dialerKeepAliveSeconds = 180
	transportMaxIdleConns  = 100
	transportMaxConnsPerHost
	transportIdleConnTimeoutSeconds       = 90
	transportTLSHandshakeTimeoutSeconds   = 15
	transportExpectContinueTimeoutSeconds = 2
)

func Run(logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dbPool, err := pgxpool.New(ctx, cfg.PG.URL)
	if err != nil {
		logger.Error("can not create pgxpool", zap.Error(err))
		return
	}
	defer dbPool.Close()
	db.SetupPostgres(dbPool, logger)

	var logRepo *zap.Logger
	if cfg.Log.LogDBRepo {
		logRepo = logger
	} else {
		logRepo = nil
	}
	repo := repository.New(logRepo, dbPool)
	authorBooks := repository.NewLinks(logRepo, dbPool, repository.TableAuthorBook)
	genreBooks := repository.NewLinks(logRepo, dbPool, repository.TableGenreBook)
	loans := repository.NewLoans(logRepo, dbPool)
	outboxRepository := repository.NewOutbox(dbPool, cfg.Outbox.AttemptsRetry)

	var logTransactor *zap.Logger
	if cfg.Log.LogTransactor {
		logTransactor = logger
	} else {
		logTransactor = nil
	}
	transactor := repository.NewTransactor(logTransactor, dbPool)
	runOutbox(ctx, cfg, logger, outboxRepository, transactor)

	var logUseCase *zap.Logger
	if cfg.Log.LogUseCase {
		logUseCase = logger
	} else {
		logUseCase = nil
	}
	useCases := lending.New(logUseCase, lending.Config{
		MaxActiveLoans: int64(cfg.Lending.MaxActiveLoans),
		LoanPeriodDays: cfg.Lending.LoanPeriodDays,
	}, lending.SystemClock{}, lending.Repositories{
		Authors:     repo,
		Genres:      repo,
		Books:       repo,
		Users:       repo,
		Queries:     repo,
		AuthorBooks: authorBooks,
		GenreBooks:  genreBooks,
		Loans:       loans,
		Outbox:      outboxRepository,
		Transactor:  transactor,
	})

	gate := auth.NewGate(logUseCase, repo)

	var logController *zap.Logger
	if cfg.Log.LogController {
		logController = logger
	} else {
		logController = nil
	}
	ctrl := controller.New(logController, useCases, useCases, useCases, useCases, gate, controller.NewHeaderCredentials())

	go runHTTP(ctx, cfg, logger, ctrl)

	<-ctx.Done()
	time.Sleep(time.Second * shutDownSeconds)
}

func runOutbox(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
	outboxRepository outbox.Repository,
	transactor repository.Transactor,
) {
	dialer := &net.Dialer{
		Timeout:   dialerTimeoutSeconds * time.Second,
		KeepAlive: dialerKeepAliveSeconds * time.Second,
	}

	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          transportMaxIdleConns,
		MaxConnsPerHost:       transportMaxConnsPerHost,
		IdleConnTimeout:       transportIdleConnTimeoutSeconds * time.Second,
		TLSHandshakeTimeout:   transportTLSHandshakeTimeoutSeconds * time.Second,
		ExpectContinueTimeout: transportExpectContinueTimeoutSeconds * time.Second,
		MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
	}

	client := new(http.Client)
	client.Transport = transport

	globalHandler := globalOutboxHandler(client, cfg.Outbox.LoanEventURL, cfg.Outbox.MailSendURL)

	var logOutbox *zap.Logger
	if cfg.Log.LogOutboxWorker {
		logOutbox = logger
	} else {
		logOutbox = nil
	}
	outboxService := outbox.New(logOutbox, outboxRepository, globalHandler, cfg, transactor)

	outboxService.Start(
		ctx,
		cfg.Outbox.Workers,
		cfg.Outbox.BatchSize,
		cfg.Outbox.WaitTimeMS,
		cfg.Outbox.InProgressTTLMS,
	)
}

func globalOutboxHandler(
	client *http.Client,
	loanEventURL,
	mailSendURL string,
) outbox.GlobalHandler {
	return func(kind repository.OutboxKind) (outbox.KindHandler, error) {
		switch kind {
		case repository.OutboxKindLoanTaken, repository.OutboxKindLoanReturned:
			return loanEventOutboxHandler(client, loanEventURL), nil
		case repository.OutboxKindUserRegistered:
			return mailOutboxHandler(client, mailSendURL), nil
		default:
			return nil, fmt.Errorf("unsupported outbox kind: %d", kind)
		}
	}
}

const contentType = "application/json"

var errFailRequest = errors.New("Not 2xx response")

const statusOk = 2

func loanEventOutboxHandler(client *http.Client, url string) outbox.KindHandler {
	return func(_ context.Context, data []byte) error {
		loan := entity.Loan{}
		err := json.Unmarshal(data, &loan)

		if err != nil {
			return fmt.Errorf("can not deserialize data in loan outbox handler: %w", err)
		}

		response, err := client.Post(url, contentType, strings.NewReader(strconv.FormatInt(loan.ID, 10)))
		if err != nil {
			return fmt.Errorf("can not make post request to given url: %w", err)
		}

		defer response.Body.Close()

		if response.StatusCode/100 != statusOk {
			return errFailRequest
		}

		return nil
	}
}

func mailOutboxHandler(client *http.Client, url string) outbox.KindHandler {
	return func(_ context.Context, data []byte) error {
		response, err := client.Post(url, contentType, strings.NewReader(string(data)))
		if err != nil {
			return fmt.Errorf("can not make post request to given url: %w", err)
		}

		defer response.Body.Close()

		if response.StatusCode/100 != statusOk {
			return errFailRequest
		}

		return nil
	}
}

func runHTTP(ctx context.Context, cfg *config.Config, logger *zap.Logger, ctrl interface{ Routes() chi.Router }) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", ctrl.Routes())

	port := ":" + cfg.HTTP.Port
	server := &http.Server{
		Addr:    port,
		Handler: r,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second*shutDownSeconds)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", zap.Error(err))
		}
	}()

	logger.Info("http server listening at port", zap.String("port", port))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server listen error", zap.Error(err))
	}
}
