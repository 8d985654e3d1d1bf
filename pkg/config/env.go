package config

const (
	EnvDatabaseURL      = "DATABASE_URL"
	EnvMongoURI         = "MONGO_URI"
	EnvDatabaseName     = "DATABASE_NAME"
	EnvMongoConnTimeout = "MONGO_CONN_TIMEOUT"
	EnvMigrateOnBoot    = "MIGRATE_ON_BOOT"

	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvAdminAPIKey = "ADMIN_API_KEY"
	EnvJWTSecret   = "JWT_SECRET"
	EnvTokenTTL    = "TOKEN_TTL"

	EnvAdminNotifyEmail = "ADMIN_NOTIFY_EMAIL"
	EnvSMTPHost         = "SMTP_HOST"
	EnvSMTPPort         = "SMTP_PORT"
	EnvSMTPUser         = "SMTP_USER"
	EnvSMTPPass         = "SMTP_PASS"
	EnvSMTPFrom         = "SMTP_FROM"
	EnvSMTPTimeout      = "SMTP_TIMEOUT"

	EnvNotifyAsync     = "NOTIFY_ASYNC"
	EnvNotifyQueueSize = "NOTIFY_QUEUE_SIZE"
	EnvNotifyWorkers   = "NOTIFY_WORKERS"

	EnvKafkaBrokers      = "KAFKA_BROKERS"
	EnvKafkaInquiryTopic = "KAFKA_INQUIRY_TOPIC"

	EnvRedisURL = "REDIS_URL"

	EnvCORSOrigins = "CORS_ORIGINS"

	EnvRateLimitRPS   = "RATE_LIMIT_RPS"
	EnvRateLimitBurst = "RATE_LIMIT_BURST"
	EnvTrustedProxies = "TRUSTED_PROXIES"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
