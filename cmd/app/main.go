package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seomarket/cmd"
	httpadapter "seomarket/internal/adapters/in/http"
	"seomarket/internal/adapters/out/kafka"
	"seomarket/internal/adapters/out/metrics"
	"seomarket/internal/adapters/out/postgres/migrations"
	"seomarket/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "seomarket",
		Usage: "order service of the SEO marketplace",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Value:   ".env",
				Usage:   "dotenv file loaded before reading the environment",
				EnvVars: []string{"ENV_FILE"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API and the outbox relay",
		Action: func(c *cli.Context) error {
			configs, err := cmd.LoadConfig(c.String("env-file"))
			if err != nil {
				return err
			}
			return serve(c.Context, configs)
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply or roll back database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					configs, err := cmd.LoadConfig(c.String("env-file"))
					if err != nil {
						return err
					}
					return migrations.Up(configs.DSN())
				},
			},
			{
				Name:  "down",
				Usage: "roll back the given number of migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "migrations to roll back"},
				},
				Action: func(c *cli.Context) error {
					configs, err := cmd.LoadConfig(c.String("env-file"))
					if err != nil {
						return err
					}
					return migrations.Down(configs.DSN(), c.Int("steps"))
				},
			},
			{
				Name:  "version",
				Usage: "print the current schema version",
				Action: func(c *cli.Context) error {
					configs, err := cmd.LoadConfig(c.String("env-file"))
					if err != nil {
						return err
					}
					version, dirty, err := migrations.Version(configs.DSN())
					if err != nil {
						return err
					}
					_, err = fmt.Fprintf(c.App.Writer, "version %d (dirty: %t)\n", version, dirty)
					return err
				},
			},
		},
	}
}

func serve(ctx context.Context, configs cmd.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m, err := metrics.New(reg)
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(configs, gormDB, m)

	jobManager, closePublisher, err := startJobs(app, configs, m, logger)
	if err != nil {
		return err
	}
	defer closePublisher()
	defer jobManager.StopAll()

	e := newEchoServer(app, m, reg, logger)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err = <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newEchoServer(app cmd.CompositionRoot, m *metrics.Metrics, reg *prometheus.Registry, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.WARN)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "Request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.DebugContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	}))
	e.Use(httpadapter.RequestMetrics(m))

	e.GET("/metrics", echo.WrapHandler(metrics.Handler(reg)))

	server := httpadapter.NewServer(app.HTTPHandlers(), logger)
	server.RegisterRoutes(e)
	return e
}

// startJobs runs the outbox relay when a broker is configured. The returned
// func closes the publisher.
func startJobs(
	app cmd.CompositionRoot,
	configs cmd.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) (*jobs.JobManager, func(), error) {
	brokers := kafka.ParseBrokers(configs.KafkaBrokers)
	if len(brokers) == 0 {
		logger.Warn("KAFKA_BROKERS is empty, outbox relay disabled")
		return jobs.NewJobManager(), func() {}, nil
	}

	publisher, err := kafka.NewPublisher(kafka.Config{
		Brokers:                brokers,
		AllowAutoTopicCreation: configs.KafkaAllowAutoTopicCreation,
	})
	if err != nil {
		return nil, nil, err
	}
	closePublisher := func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close Kafka publisher", "error", err)
		}
	}

	relayJob, err := jobs.NewOutboxRelayJob(
		app.CreateRelayOutboxCommandHandler(publisher),
		configs.OutboxRelaySchedule,
		configs.OutboxRelayBatchSize,
		m,
		logger,
	)
	if err != nil {
		closePublisher()
		return nil, nil, err
	}

	jobManager := jobs.NewJobManager(relayJob)
	if err = jobManager.StartAll(); err != nil {
		closePublisher()
		return nil, nil, err
	}
	return jobManager, closePublisher, nil
}
