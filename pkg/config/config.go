package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"jumatrek/pkg/logger"
)

// Config is built once at startup and handed to every component. Nothing
// outside this package reads the environment.
type Config struct {
	DatabaseURL      string
	DatabaseURLSet   bool
	DatabaseName     string
	MongoConnTimeout time.Duration
	MigrateOnBoot    bool

	Port      string
	LogLevel  string
	LogFormat string

	AdminAPIKey string
	JWTSecret   string
	TokenTTL    time.Duration

	AdminNotifyEmail string
	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPass         string
	SMTPFrom         string
	SMTPTimeout      time.Duration

	NotifyAsync     bool
	NotifyQueueSize int
	NotifyWorkers   int

	KafkaBrokers      []string
	KafkaInquiryTopic string

	RedisURL string

	CORSOrigins []string

	RateLimitRPS   float64
	RateLimitBurst int
	TrustedProxies []string

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the process environment.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom builds a Config from the given lookup function and validates it.
func LoadFrom(getenv func(string) string) (*Config, error) {
	e := env{get: getenv}

	dbURL := e.str(EnvDatabaseURL, "")
	if dbURL == "" {
		dbURL = e.str(EnvMongoURI, "")
	}
	dbURLSet := dbURL != ""
	if !dbURLSet {
		dbURL = DefaultDatabaseURL
	}

	smtpUser := e.str(EnvSMTPUser, "")
	smtpFrom := e.str(EnvSMTPFrom, smtpUser)
	if smtpFrom == "" {
		smtpFrom = DefaultSMTPFrom
	}

	cfg := &Config{
		DatabaseURL:      dbURL,
		DatabaseURLSet:   dbURLSet,
		DatabaseName:     e.str(EnvDatabaseName, DefaultDatabaseName),
		MongoConnTimeout: e.duration(EnvMongoConnTimeout, DefaultMongoConnTimeout),
		MigrateOnBoot:    e.boolean(EnvMigrateOnBoot, DefaultMigrateOnBoot),

		Port:      e.str(EnvPort, DefaultPort),
		LogLevel:  e.str(EnvLogLevel, DefaultLogLevel),
		LogFormat: e.str(EnvLogFormat, DefaultLogFormat),

		AdminAPIKey: e.str(EnvAdminAPIKey, ""),
		JWTSecret:   e.str(EnvJWTSecret, ""),
		TokenTTL:    e.duration(EnvTokenTTL, DefaultTokenTTL),

		AdminNotifyEmail: e.str(EnvAdminNotifyEmail, ""),
		SMTPHost:         e.str(EnvSMTPHost, ""),
		SMTPPort:         e.num(EnvSMTPPort, 0),
		SMTPUser:         smtpUser,
		SMTPPass:         e.str(EnvSMTPPass, ""),
		SMTPFrom:         smtpFrom,
		SMTPTimeout:      e.duration(EnvSMTPTimeout, DefaultSMTPTimeout),

		NotifyAsync:     e.boolean(EnvNotifyAsync, DefaultNotifyAsync),
		NotifyQueueSize: e.num(EnvNotifyQueueSize, DefaultNotifyQueueSize),
		NotifyWorkers:   e.num(EnvNotifyWorkers, DefaultNotifyWorkers),

		KafkaBrokers:      e.list(EnvKafkaBrokers, nil),
		KafkaInquiryTopic: e.str(EnvKafkaInquiryTopic, DefaultKafkaInquiryTopic),

		RedisURL: e.str(EnvRedisURL, ""),

		CORSOrigins: e.list(EnvCORSOrigins, []string{DefaultCORSOrigins}),

		RateLimitRPS:   e.float(EnvRateLimitRPS, DefaultRateLimitRPS),
		RateLimitBurst: e.num(EnvRateLimitBurst, DefaultRateLimitBurst),
		TrustedProxies: e.list(EnvTrustedProxies, nil),

		RequestTimeout: e.duration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: e.duration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: e.num(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     e.duration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    e.duration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     e.duration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: e.duration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenAdminMode is true when neither an admin key nor a token secret is set,
// which leaves the admin endpoints unprotected.
func (cfg *Config) OpenAdminMode() bool {
	return cfg.AdminAPIKey == "" && cfg.JWTSecret == ""
}

// LegacyToken is what login returns when signed tokens are disabled.
func (cfg *Config) LegacyToken() string {
	if cfg.AdminAPIKey != "" {
		return cfg.AdminAPIKey
	}
	return DevAdminToken
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.DatabaseURL == "" {
		errors = append(errors, "DatabaseURL cannot be empty")
	} else if !mongoSchemeRegex.MatchString(cfg.DatabaseURL) {
		errors = append(errors, fmt.Sprintf("DatabaseURL must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURI(cfg.DatabaseURL)))
	}
	if cfg.DatabaseName == "" {
		errors = append(errors, "DatabaseName cannot be empty")
	}

	if cfg.SMTPPort < 0 || cfg.SMTPPort > 65535 {
		errors = append(errors, fmt.Sprintf("SMTPPort must be between 0 and 65535, got: %d", cfg.SMTPPort))
	}
	if cfg.NotifyQueueSize <= 0 {
		errors = append(errors, fmt.Sprintf("NotifyQueueSize must be positive, got: %d", cfg.NotifyQueueSize))
	}
	if cfg.NotifyWorkers <= 0 {
		errors = append(errors, fmt.Sprintf("NotifyWorkers must be positive, got: %d", cfg.NotifyWorkers))
	}
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaInquiryTopic == "" {
		errors = append(errors, "KafkaInquiryTopic cannot be empty when KafkaBrokers is set")
	}
	if cfg.RedisURL != "" && !strings.HasPrefix(cfg.RedisURL, "redis://") && !strings.HasPrefix(cfg.RedisURL, "rediss://") {
		errors = append(errors, "RedisURL must start with 'redis://' or 'rediss://'")
	}

	if cfg.RateLimitRPS <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitRPS must be positive, got: %g", cfg.RateLimitRPS))
	}
	if cfg.RateLimitBurst <= 0 {
		errors = append(errors, fmt.Sprintf("RateLimitBurst must be positive, got: %d", cfg.RateLimitBurst))
	}
	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"MongoConnTimeout", cfg.MongoConnTimeout},
		{"TokenTTL", cfg.TokenTTL},
		{"SMTPTimeout", cfg.SMTPTimeout},
		{"RequestTimeout", cfg.RequestTimeout},
		{"IdempotencyTTL", cfg.IdempotencyTTL},
		{"ReadTimeout", cfg.ReadTimeout},
		{"WriteTimeout", cfg.WriteTimeout},
		{"IdleTimeout", cfg.IdleTimeout},
		{"ShutdownTimeout", cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		if d.value <= 0 {
			errors = append(errors, fmt.Sprintf("%s must be positive, got: %s", d.name, d.value))
		}
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration(log *logger.Logger) {
	log.Info("Configuration loaded successfully",
		"database_url", redactMongoURI(cfg.DatabaseURL),
		"database_name", cfg.DatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"migrate_on_boot", cfg.MigrateOnBoot,
		"port", cfg.Port,
		"admin_api_key_set", cfg.AdminAPIKey != "",
		"jwt_secret_set", cfg.JWTSecret != "",
		"token_ttl", cfg.TokenTTL,
		"admin_notify_email_set", cfg.AdminNotifyEmail != "",
		"smtp_host", cfg.SMTPHost,
		"smtp_port", cfg.SMTPPort,
		"notify_async", cfg.NotifyAsync,
		"notify_queue_size", cfg.NotifyQueueSize,
		"notify_workers", cfg.NotifyWorkers,
		"kafka_brokers", cfg.KafkaBrokers,
		"kafka_inquiry_topic", cfg.KafkaInquiryTopic,
		"redis_configured", cfg.RedisURL != "",
		"cors_origins", cfg.CORSOrigins,
		"rate_limit_rps", cfg.RateLimitRPS,
		"rate_limit_burst", cfg.RateLimitBurst,
		"trusted_proxies", cfg.TrustedProxies,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)

	if cfg.OpenAdminMode() {
		log.Warn("Admin endpoints are UNPROTECTED: neither ADMIN_API_KEY nor JWT_SECRET is set")
	}
}

var (
	mongoSchemeRegex     = regexp.MustCompile(`^mongodb(\+srv)?://`)
	mongoCredentialRegex = regexp.MustCompile(`(mongodb(\+srv)?://)[^:/@]+:[^@]+@`)
)

func redactMongoURI(uri string) string {
	return mongoCredentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

// RedactedDatabaseURL is safe to expose in diagnostics.
func (cfg *Config) RedactedDatabaseURL() string {
	return redactMongoURI(cfg.DatabaseURL)
}

type env struct {
	get func(string) string
}

func (e env) str(key, fallback string) string {
	if value := strings.TrimSpace(e.get(key)); value != "" {
		return value
	}
	return fallback
}

func (e env) num(key string, fallback int) int {
	if value := e.get(key); value != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
	}
	return fallback
}

func (e env) float(key string, fallback float64) float64 {
	if value := e.get(key); value != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return f
		}
	}
	return fallback
}

func (e env) boolean(key string, fallback bool) bool {
	if value := e.get(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return fallback
}

func (e env) duration(key string, fallback time.Duration) time.Duration {
	if value := e.get(key); value != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return d
		}
	}
	return fallback
}

func (e env) list(key string, fallback []string) []string {
	value := e.get(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
