package main

import (
	"context"
	"os"

	adminhandler "jumatrek/internal/admins/handler"
	adminrepo "jumatrek/internal/admins/repository"
	adminservice "jumatrek/internal/admins/service"
	"jumatrek/internal/auth"
	bloghandler "jumatrek/internal/blogposts/handler"
	blogrepo "jumatrek/internal/blogposts/repository"
	blogservice "jumatrek/internal/blogposts/service"
	inquiryhandler "jumatrek/internal/inquiries/handler"
	inquiryrepo "jumatrek/internal/inquiries/repository"
	inquiryservice "jumatrek/internal/inquiries/service"
	mongoMigration "jumatrek/internal/migrations/mongo"
	"jumatrek/internal/notify"
	"jumatrek/internal/store"
	"jumatrek/internal/system"
	trekhandler "jumatrek/internal/treks/handler"
	trekrepo "jumatrek/internal/treks/repository"
	trekservice "jumatrek/internal/treks/service"
	"jumatrek/internal/validation"
	"jumatrek/pkg/app"
	"jumatrek/pkg/client"
	"jumatrek/pkg/config"
	"jumatrek/pkg/contracts"
	"jumatrek/pkg/kafka"
	"jumatrek/pkg/logger"
	"jumatrek/pkg/middleware"

	"github.com/joho/godotenv"
)

const ServiceName = "jumatrek-api"

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{Service: ServiceName})
		bootLog.Fatal("Invalid configuration", "error", err)
	}

	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  os.Stdout,
		Service: ServiceName,
	})
	cfg.LogConfiguration(log)
	log.Info("Starting Juma Trek API")

	clients := client.NewClient()
	if err := clients.ConnectMongo(log, cfg.DatabaseURL, cfg.MongoConnTimeout); err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	if err := clients.ConnectRedis(log, cfg.RedisURL, cfg.MongoConnTimeout); err != nil {
		log.Fatal("Failed to connect to Redis", "error", err)
	}

	db := clients.Mongo.Database(cfg.DatabaseName)
	if cfg.MigrateOnBoot {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout*3)
		err := mongoMigration.RunMigration(ctx, db, log)
		cancel()
		if err != nil {
			log.Fatal("Migration failed", "error", err)
		}
	}

	gw := store.NewMongoGateway(db, store.Timeouts{Read: cfg.ReadTimeout, Write: cfg.WriteTimeout})
	v := validation.New()

	var tokens *auth.TokenIssuer
	if cfg.JWTSecret != "" {
		tokens = auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	}
	gate := auth.NewGate(cfg.AdminAPIKey, tokens, log.With("component", "auth"))

	serverApp := app.NewApplication(cfg, log)

	notifier := initNotifier(cfg, log, serverApp)

	proxies, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		log.Fatal("Invalid TRUSTED_PROXIES", "error", err)
	}
	rateLimiter := middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, proxies, log)
	idempotencyStore := initIdempotencyStore(cfg, clients, log)

	handlers := []contracts.Handler{
		trekhandler.NewTrekHandler(
			trekservice.NewTrekService(trekrepo.NewTrekRepository(gw), v, log.With("domain", "treks")),
			gate, log),
		bloghandler.NewBlogPostHandler(
			blogservice.NewBlogPostService(blogrepo.NewBlogPostRepository(gw), v, log.With("domain", "blogposts")),
			gate, log),
		inquiryhandler.NewInquiryHandler(
			inquiryservice.NewInquiryService(inquiryrepo.NewInquiryRepository(gw), v, notifier, log.With("domain", "inquiries")),
			gate, log,
			rateLimiter.Limit,
			middleware.Idempotency(idempotencyStore, middleware.DefaultIdempotencyHeader)),
		adminhandler.NewAdminHandler(
			adminservice.NewAdminService(adminrepo.NewAdminUserRepository(gw), v, tokens, cfg.LegacyToken(), log.With("domain", "admins")),
			gate, log,
			rateLimiter.Limit),
	}

	health := system.NewSystemHandler(gw, system.Options{
		DatabaseURLSet: cfg.DatabaseURLSet,
		AdminOpenMode:  gate.Open(),
	}, log)

	serverApp.SetApp(health, handlers...)

	serverApp.OnShutdown("idempotency store", func(context.Context) error {
		idempotencyStore.Stop()
		return nil
	})
	serverApp.OnShutdown("rate limiter", func(context.Context) error {
		rateLimiter.Stop()
		return nil
	})
	serverApp.OnShutdown("clients", clients.Close)

	serverApp.Run()
}

// initNotifier registers its own shutdown steps so queued mail drains before
// the event producer closes.
func initNotifier(cfg *config.Config, log *logger.Logger, serverApp *app.Application) *notify.Notifier {
	notifyLog := log.With("component", "notify")

	mailer := notify.NewSMTPMailer(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
		Timeout:  cfg.SMTPTimeout,
	}, notifyLog)
	if !mailer.Configured() {
		notifyLog.Warn("SMTP is not fully configured; inquiry emails will be skipped")
	}

	var dispatcher *notify.Dispatcher
	if cfg.NotifyAsync {
		dispatcher = notify.NewDispatcher(mailer, cfg.NotifyQueueSize, cfg.NotifyWorkers, notifyLog)
		dispatcher.Start()
		serverApp.OnShutdown("mail dispatcher", dispatcher.Stop)
	}

	var publisher notify.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(kafka.DefaultProducerConfig(cfg.KafkaBrokers, cfg.KafkaInquiryTopic), notifyLog)
		if err != nil {
			log.Fatal("Failed to create Kafka producer", "error", err)
		}
		producer.Use(kafka.LoggingMiddleware(notifyLog))
		publisher = producer
		serverApp.OnShutdown("kafka producer", func(context.Context) error {
			return producer.Close()
		})
		notifyLog.Info("Inquiry events enabled", "topic", cfg.KafkaInquiryTopic, "brokers", cfg.KafkaBrokers)
	}

	return notify.NewNotifier(mailer, dispatcher, publisher, cfg.AdminNotifyEmail, notifyLog)
}

// initIdempotencyStore shares keys across replicas through Redis when it is
// configured.
func initIdempotencyStore(cfg *config.Config, clients *client.Client, log *logger.Logger) middleware.IdempotencyStore {
	if clients.Redis != nil {
		log.Info("Using Redis idempotency store", "ttl", cfg.IdempotencyTTL)
		return middleware.NewRedisIdempotencyStore(clients.Redis, cfg.IdempotencyTTL, log)
	}
	log.Info("Using in-memory idempotency store", "ttl", cfg.IdempotencyTTL)
	return middleware.NewInMemoryIdempotencyStore(cfg.IdempotencyTTL)
}
