package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BrokerNone     = ""
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	DBMaxOpenConns         int
	DBMaxIdleConns         int
	JWTSecret              string
	PlacementMaxRetries    int
	MessageBroker          string
	KafkaHost              string
	KafkaOrderChangedTopic string
	RabbitMQURL            string
	RabbitMQExchange       string
	RedisAddr              string
	IdempotencyTTL         time.Duration
	OutboxRelaySchedule    string
	OutboxBatchSize        int
	ShutdownTimeout        time.Duration
}

// LoadConfig reads the environment, after loading envFile if it exists.
// Variables already set in the process environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	var parseErrs []error
	intVar := func(key string, def int) int {
		v, err := envInt(key, def)
		parseErrs = append(parseErrs, err)
		return v
	}
	durationVar := func(key string, def time.Duration) time.Duration {
		v, err := envDuration(key, def)
		parseErrs = append(parseErrs, err)
		return v
	}

	config := Config{
		HTTPPort:               envString("HTTP_PORT", "8080"),
		DBHost:                 envString("DB_HOST", ""),
		DBPort:                 envString("DB_PORT", "5432"),
		DBUser:                 envString("DB_USER", ""),
		DBPassword:             envString("DB_PASSWORD", ""),
		DBName:                 envString("DB_NAME", ""),
		DBSslMode:              envString("DB_SSLMODE", "disable"),
		DBMaxOpenConns:         intVar("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:         intVar("DB_MAX_IDLE_CONNS", 5),
		JWTSecret:              envString("JWT_SECRET", ""),
		PlacementMaxRetries:    intVar("PLACEMENT_MAX_RETRIES", 3),
		MessageBroker:          strings.ToLower(envString("MESSAGE_BROKER", BrokerNone)),
		KafkaHost:              envString("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: envString("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		RabbitMQURL:            envString("RABBITMQ_URL", ""),
		RabbitMQExchange:       envString("RABBITMQ_EXCHANGE", "orders"),
		RedisAddr:              envString("REDIS_ADDR", ""),
		IdempotencyTTL:         durationVar("IDEMPOTENCY_TTL", 24*time.Hour),
		OutboxRelaySchedule:    envString("OUTBOX_RELAY_SCHEDULE", ""),
		OutboxBatchSize:        intVar("OUTBOX_BATCH_SIZE", 100),
		ShutdownTimeout:        durationVar("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if err := errors.Join(parseErrs...); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks what every subcommand needs: the database and, when a broker
// is selected, its connection settings.
func (c Config) Validate() error {
	var problems []error
	for key, value := range map[string]string{
		"DB_HOST": c.DBHost,
		"DB_USER": c.DBUser,
		"DB_NAME": c.DBName,
	} {
		if value == "" {
			problems = append(problems, fmt.Errorf("%s is required", key))
		}
	}

	switch c.MessageBroker {
	case BrokerNone:
	case BrokerKafka:
		if c.KafkaHost == "" {
			problems = append(problems, errors.New("KAFKA_HOST is required when MESSAGE_BROKER=kafka"))
		}
	case BrokerRabbitMQ:
		if c.RabbitMQURL == "" {
			problems = append(problems, errors.New("RABBITMQ_URL is required when MESSAGE_BROKER=rabbitmq"))
		}
	default:
		problems = append(problems, fmt.Errorf("MESSAGE_BROKER %q is not one of kafka, rabbitmq", c.MessageBroker))
	}

	if c.PlacementMaxRetries < 0 {
		problems = append(problems, errors.New("PLACEMENT_MAX_RETRIES must not be negative"))
	}

	return errors.Join(problems...)
}

// ValidateAuth checks the settings needed to verify or mint bearer tokens.
func (c Config) ValidateAuth() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func envInt(key string, def int) (int, error) {
	raw := envString(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	raw := envString(key, "")
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
