// @title Unbroken API
// @description API for the gym check-in tracker "Unbroken"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/unbroken/internal/api"
	"github.com/limbo/unbroken/internal/repository"
	"github.com/limbo/unbroken/internal/service"
	"github.com/limbo/unbroken/pkg/cleanup"
	"github.com/limbo/unbroken/pkg/config"
	jwtservice "github.com/limbo/unbroken/pkg/jwt_service"
	"github.com/limbo/unbroken/pkg/logging"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logging.Init(logging.Options{
		Level:      cfg.GetStringOr("LOG_LEVEL", "info"),
		Path:       cfg.GetString("LOG_PATH"),
		MaxSizeMB:  cfg.GetInt("LOG_MAX_SIZE_MB", 100),
		MaxBackups: cfg.GetInt("LOG_MAX_BACKUPS", 3),
		MaxAgeDays: cfg.GetInt("LOG_MAX_AGE_DAYS", 7),
		Compress:   cfg.GetBool("LOG_COMPRESS", false),
	})
	defer cleanup.CleanUp()

	kv, err := repository.OpenSQLiteKV(cfg.GetStringOr("SQLITE_PATH", "./data/unbroken.db"))
	if err != nil {
		log.Fatal("opening local store error: " + err.Error())
	}
	opts := service.SessionOptions{
		KV:            kv,
		WatchInterval: cfg.GetDuration("WATCH_INTERVAL", service.DefaultWatchInterval),
		Follow:        cfg.GetBool("FOLLOW_REMOTE", true),
	}

	var accountService service.AccountServiceI
	if address := cfg.GetString("POSTGRES_DB_ADDRESS"); address != "" {
		dbCfg := repository.PGCfg{
			Address:  address,
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		}
		if err = repository.Migrate(&dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
			log.Fatal(err)
		}
		opts.Records = repository.NewRecordsRepo(&dbCfg)
		accountService = service.NewAccountService(repository.NewAccountsRepo(&dbCfg))
	} else {
		slog.Warn("POSTGRES_DB_ADDRESS is not set, accounts disabled and storage is local only")
	}
	if address := cfg.GetString("REDIS_ADDR"); address != "" {
		opts.SyncStore = repository.NewRedisSyncStore(repository.RedisCfg{
			Address:  address,
			Password: cfg.GetString("REDIS_PASSWORD"),
			DB:       cfg.GetInt("REDIS_DB", 0),
		})
	}

	sessions := service.NewSessionManager(opts)
	cleanup.Register(&cleanup.Job{
		Name: "closing sessions",
		F:    sessions.Close,
	})

	serv := api.New(&api.ServicesList{
		AccountService: accountService,
		Tracker:        sessions,
		JwtService:     jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", 0)),
		SyncRatePerMin: cfg.GetInt("SYNC_RATE_PER_MIN", 6),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
