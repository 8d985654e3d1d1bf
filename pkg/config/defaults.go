package config

import "time"

const (
	DefaultDatabaseURL      = "mongodb://localhost:27017"
	DefaultDatabaseName     = "jumatrek"
	DefaultMongoConnTimeout = 10 * time.Second
	DefaultMigrateOnBoot    = true

	DefaultPort      = "8000"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultTokenTTL = 12 * time.Hour

	DefaultSMTPFrom    = "noreply@example.com"
	DefaultSMTPTimeout = 10 * time.Second

	DefaultNotifyAsync     = true
	DefaultNotifyQueueSize = 100
	DefaultNotifyWorkers   = 2

	DefaultKafkaInquiryTopic = "inquiries.created"

	DefaultCORSOrigins = "*"

	DefaultRateLimitRPS   = 1.0
	DefaultRateLimitBurst = 10

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// DevAdminToken is handed out by login when no admin key is configured.
	DevAdminToken = "dev-admin"
)
