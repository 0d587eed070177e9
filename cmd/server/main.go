package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/markdias/hair.studio9381-sub000/internal/api"
	"github.com/markdias/hair.studio9381-sub000/internal/availability"
	"github.com/markdias/hair.studio9381-sub000/internal/booking"
	"github.com/markdias/hair.studio9381-sub000/internal/config"
	"github.com/markdias/hair.studio9381-sub000/internal/database"
	"github.com/markdias/hair.studio9381-sub000/internal/events"
	"github.com/markdias/hair.studio9381-sub000/internal/gcal"
	"github.com/markdias/hair.studio9381-sub000/internal/metrics"
	"github.com/markdias/hair.studio9381-sub000/internal/notify"
	"github.com/markdias/hair.studio9381-sub000/internal/slots"
)

func main() {
	_ = godotenv.Load()

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	cfg, err := config.Load(os.Getenv("SALON_CONFIG_PATH"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := database.NewDB(cfg.Database.Path, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("open db error")
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Seed opening hours from config the first time only; afterwards the
	// settings row is the source of truth.
	if cfg.Salon.OpeningHours != "" {
		if current, err := db.OpeningHours(ctx); err == nil && current == "" {
			if err := db.SetSetting(ctx, database.SettingOpeningHours, cfg.Salon.OpeningHours); err != nil {
				logger.Error().Err(err).Msg("failed to seed opening hours")
			}
		}
	}

	calendar, err := gcal.NewClient(ctx, cfg.Google.CredentialsPath, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("create calendar client error")
	}

	var rdb *redis.Client
	if cfg.Redis.Address != "" && cfg.CacheTTL() > 0 {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Address, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		calendar.UseRedisCache(rdb, cfg.CacheTTL())
	}

	// Initial load + hot reload of the stylist roster.
	if err := config.WatchStylists(ctx, cfg.StylistsConfigPath, 30*time.Second, func(updated *config.StylistsConfig) {
		if updated == nil {
			return
		}
		if err := db.SyncStylistsFromRoster(ctx, updated.Bindings()); err != nil {
			logger.Error().Err(err).Msg("failed to apply stylist roster")
		}
	}); err != nil {
		logger.Error().Err(err).Msg("stylist roster watch failed")
	}

	mailer := notify.NewMailer(notify.MailerConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		Subject:  cfg.SMTP.Subject,
		Template: cfg.SMTP.Template,
	}, &logger)

	adminAlerts, err := notify.NewAdminNotifier(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("admin notifier disabled")
	}

	bus := events.NewBus()
	if adminAlerts != nil && adminAlerts.Configured() {
		bus.Subscribe(events.TypeBookingCreated, func(_ string, ev events.BookingEvent) {
			if err := adminAlerts.NotifyBooking(ctx, ev.Request, ev.EventID); err != nil {
				logger.Error().Err(err).Msg("admin alert failed")
				metrics.IncNotification("telegram", "failed")
				return
			}
			metrics.IncNotification("telegram", "sent")
		})
	}

	generator := slots.NewGenerator(cfg.Booking.SlotMinutes, cfg.Booking.WindowStartHour, cfg.Booking.WindowEndHour)
	availSvc := availability.NewService(calendar, db, generator, &logger)

	coordinator := booking.NewCoordinator(
		calendar, db, db, mailer, bus,
		cfg.Google.DefaultCalendarID,
		booking.SalonInfo{Phone: cfg.Salon.Phone, Location: cfg.Salon.Location},
		cfg.Location(),
		&logger,
	)

	if cfg.Monitoring.HealthCheckPort == 0 {
		cfg.Monitoring.HealthCheckPort = 8090
	}
	go startHealthServer(ctx, cfg.Monitoring.HealthCheckPort, db, rdb, &logger)

	if cfg.Monitoring.PrometheusEnabled {
		if cfg.Monitoring.PrometheusPort == 0 {
			cfg.Monitoring.PrometheusPort = 9090
		}
		metrics.Register()
		go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, &logger)
	}

	if cfg.Backup.Enabled {
		go startBackupLoop(ctx, db, cfg, &logger)
	}

	server := api.NewHTTPServer(
		cfg.Server.Port,
		cfg.Server.APIKey,
		cfg.Google.DefaultCalendarID,
		availSvc, coordinator, db, &logger,
	)

	logger.Info().Str("salon", cfg.Salon.Name).Msg("booking engine started")
	if err := server.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msg("api server error")
	}
}

func startBackupLoop(ctx context.Context, db *database.DB, cfg *config.Config, logger *zerolog.Logger) {
	if cfg.Backup.Path == "" {
		cfg.Backup.Path = "backups"
	}

	if err := os.MkdirAll(cfg.Backup.Path, 0o755); err != nil {
		logger.Error().Err(err).Msg("failed to create backup directory")
		return
	}

	// Run first backup after a short delay
	select {
	case <-time.After(1 * time.Minute):
		runBackupTask(db, cfg, logger)
	case <-ctx.Done():
		return
	}

	ticker := time.NewTicker(cfg.BackupInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			runBackupTask(db, cfg, logger)
		case <-ctx.Done():
			return
		}
	}
}

func runBackupTask(db *database.DB, cfg *config.Config, logger *zerolog.Logger) {
	timestamp := time.Now().Format("20060102_150405")
	dest := filepath.Join(cfg.Backup.Path, fmt.Sprintf("salon_%s.db", timestamp))

	logger.Info().Str("path", dest).Msg("starting database backup")
	if err := db.Backup(cfg.Database.Path, dest); err != nil {
		logger.Error().Err(err).Msg("backup failed")
	} else {
		logger.Info().Msg("backup completed successfully")
	}

	deleted, err := db.CleanupBackups(cfg.Backup.Path, cfg.BackupRetention())
	if err != nil {
		logger.Error().Err(err).Msg("backup cleanup failed")
	} else if deleted > 0 {
		logger.Info().Int("deleted", deleted).Msg("cleaned up old backups")
	}
}

func startHealthServer(ctx context.Context, port int, db *database.DB, rdb *redis.Client, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		ctxPing, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		if err := db.PingContext(ctxPing); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		if rdb != nil {
			if err := rdb.Ping(ctxPing).Err(); err != nil {
				http.Error(w, "redis not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("health server error")
	}
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
