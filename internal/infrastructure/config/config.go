// Package config reads the service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"

	ChannelLog   = "log"
	ChannelNATS  = "nats"
	ChannelInbox = "inbox"
)

// Config holds every setting the binaries use. DynamoDB table names are
// read by the repositories themselves (ASSIGNMENTS_TABLE, QUOTES_TABLE,
// CLEANERS_TABLE, CLEANER_SLOTS_TABLE, NOTIFICATIONS_TABLE).
type Config struct {
	Port    string `mapstructure:"PORT"`
	GinMode string `mapstructure:"GIN_MODE"`

	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	MemorySeedFile string `mapstructure:"MEMORY_SEED_FILE"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`

	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	MigrateOnStart bool   `mapstructure:"MIGRATE_ON_START"`

	NotifyChannels    string `mapstructure:"NOTIFY_CHANNELS"`
	NATSURL           string `mapstructure:"NATS_URL"`
	NATSSubjectPrefix string `mapstructure:"NATS_SUBJECT_PREFIX"`
	AdminRecipientID  string `mapstructure:"ADMIN_RECIPIENT_ID"`

	AvailabilityTimeout time.Duration `mapstructure:"AVAILABILITY_TIMEOUT"`
	NotifyTimeout       time.Duration `mapstructure:"NOTIFY_TIMEOUT"`
	SweepInterval       time.Duration `mapstructure:"SWEEP_INTERVAL"`
	SweepConcurrency    int           `mapstructure:"SWEEP_CONCURRENCY"`

	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogFile  string `mapstructure:"LOG_FILE"`
}

var defaults = map[string]any{
	"PORT":                  "8080",
	"GIN_MODE":              "",
	"STORAGE_BACKEND":       BackendDynamoDB,
	"MEMORY_SEED_FILE":      "",
	"AWS_REGION":            "us-east-1",
	"AWS_ACCESS_KEY_ID":     "local",
	"AWS_SECRET_ACCESS_KEY": "local",
	"DYNAMODB_ENDPOINT":     "",
	"DATABASE_URL":          "",
	"MIGRATE_ON_START":      false,
	"NOTIFY_CHANNELS":       ChannelLog,
	"NATS_URL":              "nats://127.0.0.1:4222",
	"NATS_SUBJECT_PREFIX":   "notifications",
	"ADMIN_RECIPIENT_ID":    "admin",
	"AVAILABILITY_TIMEOUT":  "5s",
	"NOTIFY_TIMEOUT":        "5s",
	"SWEEP_INTERVAL":        "1m",
	"SWEEP_CONCURRENCY":     4,
	"LOG_LEVEL":             "info",
	"LOG_FILE":              "",
}

// Load reads the environment. Every key has a default so a bare
// `go run ./cmd/api` works against a local DynamoDB.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Channels returns the configured notification channels in order, without
// blanks or repeats.
func (c Config) Channels() []string {
	seen := map[string]bool{}
	var out []string
	for _, ch := range strings.Split(c.NotifyChannels, ",") {
		ch = strings.ToLower(strings.TrimSpace(ch))
		if ch == "" || seen[ch] {
			continue
		}
		seen[ch] = true
		out = append(out, ch)
	}
	return out
}

func (c Config) Validate() error {
	var errs []error

	switch c.StorageBackend {
	case BackendDynamoDB, BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORAGE_BACKEND=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend))
	}

	for _, ch := range c.Channels() {
		switch ch {
		case ChannelLog, ChannelInbox:
		case ChannelNATS:
			if c.NATSURL == "" {
				errs = append(errs, errors.New("NATS_URL is required for the nats notification channel"))
			}
		default:
			errs = append(errs, fmt.Errorf("unknown notification channel %q", ch))
		}
	}

	if c.AvailabilityTimeout <= 0 {
		errs = append(errs, errors.New("AVAILABILITY_TIMEOUT must be positive"))
	}
	if c.NotifyTimeout <= 0 {
		errs = append(errs, errors.New("NOTIFY_TIMEOUT must be positive"))
	}
	if c.SweepInterval < 0 {
		errs = append(errs, errors.New("SWEEP_INTERVAL must not be negative"))
	}
	if c.SweepConcurrency <= 0 {
		errs = append(errs, errors.New("SWEEP_CONCURRENCY must be positive"))
	}
	return errors.Join(errs...)
}
