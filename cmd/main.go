package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/care-sa/booking/internal/api"
	"github.com/care-sa/booking/internal/clients/alrajhi"
	"github.com/care-sa/booking/internal/clients/auth"
	"github.com/care-sa/booking/internal/clients/expo"
	"github.com/care-sa/booking/internal/clients/tamara"
	"github.com/care-sa/booking/internal/notifier"
	"github.com/care-sa/booking/internal/repository"
	"github.com/care-sa/booking/internal/service"
	"github.com/care-sa/booking/pkg/broker"
	"github.com/care-sa/booking/pkg/config"
	"github.com/care-sa/booking/pkg/job"
	"github.com/care-sa/booking/pkg/logger"
	"github.com/care-sa/booking/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 2 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.OrderEventsTopic, cfg.Kafka.PaymentEventsTopic)
	defer producer.Close()

	alrajhiClient := alrajhi.NewClient(cfg.Alrajhi)
	tamaraClient := tamara.NewClient(cfg.Tamara)

	s := service.New(
		repo,
		producer,
		alrajhiClient,
		tamaraClient,
		time.Duration(cfg.Alrajhi.PageTTLMinutes)*time.Minute,
		decimal.NewFromFloat(cfg.BackCashPct),
	)

	authService := auth.NewClient(cfg.AuthServiceURL)

	expoClient := expo.NewClient(cfg.Push.GatewayURL, cfg.Push.RetryMax)
	n := notifier.New(repo, expoClient)

	consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroupID, cfg.Kafka.OrderEventsTopic, cfg.Kafka.PaymentEventsTopic).
		Handle(cfg.Kafka.OrderEventsTopic, n.HandleOrderEvent).
		Handle(cfg.Kafka.PaymentEventsTopic, n.HandlePaymentEvent).
		Consume(ctx)
	defer consumer.Close()

	{
		job.NewService().
			RegisterJob("expire stale payment pages", time.Hour, s.ExpireStalePages).
			RegisterJob("reconcile pending tamara checkouts", 15*time.Minute, s.ReconcileTamaraPages).
			Start(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(authService, cfg.Alrajhi.CallbackIPWL, cfg.Tamara.NotificationKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
