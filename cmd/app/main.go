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

	"foodorder/cmd"
	httpadapter "foodorder/internal/adapters/in/http"
	kafkaadapter "foodorder/internal/adapters/out/kafka"
	postgresadapter "foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/rabbitmq"
	redisadapter "foodorder/internal/adapters/out/redis"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "foodorder",
		Short:         "Food ordering backend: order placement, order lifecycle and menus",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file; process environment wins")

	root.AddCommand(
		newServeCommand(&envFile),
		newMigrateCommand(&envFile),
		newTokenCommand(&envFile),
	)
	return root
}

func newServeCommand(envFile *string) *cobra.Command {
	var autoMigrate bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the outbox relay",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := loadConfigs(*envFile)
			if err != nil {
				return err
			}
			if err = configs.ValidateAuth(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, configs, newLogger(), autoMigrate)
		},
	}
	c.Flags().BoolVar(&autoMigrate, "migrate", false, "apply the schema before serving")
	return c
}

func newMigrateCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := loadConfigs(*envFile)
			if err != nil {
				return err
			}

			logger := newLogger()
			db, err := openDatabase(c.Context(), configs)
			if err != nil {
				return err
			}
			defer closeDatabase(db, logger)

			if err = postgresadapter.Migrate(c.Context(), db); err != nil {
				return err
			}
			logger.Info("schema is up to date", "database", configs.DBName)
			return nil
		},
	}
}

func newTokenCommand(envFile *string) *cobra.Command {
	var (
		role string
		id   int64
		name string
	)

	c := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, err := cmd.LoadConfig(*envFile)
			if err != nil {
				return err
			}
			if err = configs.ValidateAuth(); err != nil {
				return err
			}

			auth, err := httpadapter.NewJWTAuthenticator(configs.JWTSecret)
			if err != nil {
				return err
			}

			principal := httpadapter.Principal{Name: name}
			if principal.Role, err = httpadapter.ParseRole(role); err != nil {
				return err
			}
			if principal.Role != httpadapter.RoleAdmin {
				if principal.ID, err = kernel.NewID(id); err != nil {
					return fmt.Errorf("--id: %w", err)
				}
			}

			token, err := auth.IssueToken(principal)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), token)
			return err
		},
	}
	c.Flags().StringVar(&role, "role", string(httpadapter.RoleCustomer), "admin, customer, partner or restaurant")
	c.Flags().Int64Var(&id, "id", 0, "customer, partner or restaurant id")
	c.Flags().StringVar(&name, "name", "", "display name")
	return c
}

func serve(ctx context.Context, configs cmd.Config, logger *slog.Logger, autoMigrate bool) error {
	db, err := openDatabase(ctx, configs)
	if err != nil {
		return err
	}
	defer closeDatabase(db, logger)

	if autoMigrate {
		if err = postgresadapter.Migrate(ctx, db); err != nil {
			return err
		}
	}

	store, closeStore, err := openIdempotencyStore(ctx, configs)
	if err != nil {
		return err
	}
	defer closeStore()

	publisher, err := openPublisher(configs)
	if err != nil {
		return err
	}
	if publisher != nil {
		defer func() {
			if closeErr := publisher.Close(); closeErr != nil {
				logger.Error("closing event publisher", "error", closeErr)
			}
		}()
	}

	app := cmd.NewCompositionRoot(configs, db, store, publisher, logger)

	auth, err := app.CreateAuthenticator()
	if err != nil {
		return err
	}
	metrics := httpadapter.NewMetrics()
	e, err := httpadapter.NewRouter(app.CreateHTTPServer(metrics), auth, metrics, logger)
	if err != nil {
		return err
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return err
	}
	if err = jobManager.StartAll(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", "port", configs.HTTPPort)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		jobManager.StopAll()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func loadConfigs(envFile string) (cmd.Config, error) {
	configs, err := cmd.LoadConfig(envFile)
	if err != nil {
		return cmd.Config{}, err
	}
	if err = configs.Validate(); err != nil {
		return cmd.Config{}, err
	}
	return configs, nil
}

func newLogger() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	return logger
}

func openDatabase(ctx context.Context, configs cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(configs.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(configs.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func closeDatabase(db *gorm.DB, logger *slog.Logger) {
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Close()
	}
	if err != nil {
		logger.Error("closing database", "error", err)
	}
}

// openIdempotencyStore returns a nil store when REDIS_ADDR is not set.
func openIdempotencyStore(ctx context.Context, configs cmd.Config) (ports.IdempotencyStore, func(), error) {
	if configs.RedisAddr == "" {
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	store := redisadapter.NewIdempotencyStore(client, configs.IdempotencyTTL)
	if err := store.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return store, func() { _ = client.Close() }, nil
}

// openPublisher returns a nil publisher when no broker is configured.
func openPublisher(configs cmd.Config) (ports.EventPublisher, error) {
	switch configs.MessageBroker {
	case cmd.BrokerKafka:
		p, err := kafkaadapter.NewPublisher(configs.KafkaHost, configs.KafkaOrderChangedTopic)
		if err != nil {
			return nil, err
		}
		return p, nil
	case cmd.BrokerRabbitMQ:
		p, err := rabbitmq.Dial(configs.RabbitMQURL, configs.RabbitMQExchange)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, nil
	}
}
