package main

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-booking/internal/audit"
	"github.com/BruksfildServices01/salon-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-booking/internal/db"
	"github.com/BruksfildServices01/salon-booking/internal/infra/repository"
	"github.com/BruksfildServices01/salon-booking/internal/logger"
	"github.com/BruksfildServices01/salon-booking/internal/telemetry"
)

// app holds what both the server and the CLI commands need.
type app struct {
	cfg   *config.Config
	log   zerolog.Logger
	repo  *repository.AppointmentAPIRepository
	audit *audit.Dispatcher

	closers []func(context.Context) error
}

func newApp(ctx context.Context) (*app, error) {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.IsDev())

	a := &app{cfg: cfg, log: log}

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:      cfg.OTelEnabled,
		ServiceName:  "salon-booking",
		OTLPEndpoint: cfg.OTelEndpoint,
		SampleRatio:  cfg.OTelSampleRatio,
	})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, shutdownTracing)

	a.repo = repository.NewAppointmentAPIRepository(
		cfg.APIBaseURL,
		cfg.APITimeout,
		telemetry.Transport(nil),
	)

	var sinks audit.MultiSink
	if cfg.AuditDBUrl != "" {
		db, err := dbpkg.NewDB(cfg.AuditDBUrl)
		if err != nil {
			_ = a.close(ctx)
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return dbpkg.Close(db) })
		sinks = append(sinks, audit.NewGormSink(db))
	}
	if brokers := audit.SplitBrokers(cfg.AuditKafkaBrokers); len(brokers) > 0 {
		ks := audit.NewKafkaSink(brokers, cfg.AuditKafkaTopic)
		a.closers = append(a.closers, func(context.Context) error { return ks.Close() })
		sinks = append(sinks, ks)
	}

	var sink audit.Sink = audit.NewLogSink(log)
	switch len(sinks) {
	case 0:
	case 1:
		sink = sinks[0]
	default:
		sink = sinks
	}

	a.audit = audit.NewDispatcher(sink, log)
	// Drain the audit queue before the database and tracer go away.
	a.closers = append(a.closers, a.audit.Close)

	return a, nil
}

// close releases resources in reverse order of acquisition.
func (a *app) close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
