package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studytrack-backend/internal/adapter/postgres"
	recordrepo "github.com/heartmarshall/studytrack-backend/internal/adapter/postgres/record"
	scorerepo "github.com/heartmarshall/studytrack-backend/internal/adapter/postgres/score"
	userrepo "github.com/heartmarshall/studytrack-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/studytrack-backend/internal/adapter/provider/weather"
	"github.com/heartmarshall/studytrack-backend/internal/adapter/storage/localfs"
	authpkg "github.com/heartmarshall/studytrack-backend/internal/auth"
	"github.com/heartmarshall/studytrack-backend/internal/config"
	authsvc "github.com/heartmarshall/studytrack-backend/internal/service/auth"
	"github.com/heartmarshall/studytrack-backend/internal/service/leaderboard"
	recordsvc "github.com/heartmarshall/studytrack-backend/internal/service/record"
	usersvc "github.com/heartmarshall/studytrack-backend/internal/service/user"
	"github.com/heartmarshall/studytrack-backend/internal/transport/rest"
)

// Run loads configuration, connects to PostgreSQL, applies migrations and
// serves the HTTP API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.SkipMigrations {
		logger.Info("skipping migrations")
	} else if err := migrate(ctx, pool, logger); err != nil {
		return err
	}

	handler, err := NewHandler(cfg, pool, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	return Serve(ctx, srv, ln, cfg.Server, logger)
}

func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck

	if err := m.Up(ctx, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// NewHandler wires repositories, services and handlers into the HTTP router.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, error) {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	records := recordrepo.New(pool)
	scores := scorerepo.New(pool)

	avatars, err := localfs.New(cfg.Upload.Dir, cfg.Upload.URLPrefix)
	if err != nil {
		return nil, fmt.Errorf("avatar storage: %w", err)
	}

	jwt := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := authpkg.NewPasswordHasher(cfg.Auth.BcryptCost)

	authService := authsvc.NewService(logger, users, hasher, jwt)
	userService := usersvc.NewService(logger, users, hasher, avatars, txm, cfg.Upload.MaxBytes)
	recordService := recordsvc.NewService(logger, records, scores, clockwork.NewRealClock())
	leaderboardService := leaderboard.NewService(logger, scores, cfg.Leaderboard.DefaultLimit, cfg.Leaderboard.MaxLimit)
	weatherProvider := weather.NewProvider(cfg.Weather, logger)

	return rest.NewRouter(rest.RouterDeps{
		Logger:    logger,
		Tokens:    authService,
		Health:    rest.NewHealthHandler(pool, BuildVersion(), weatherProvider.Enabled(), nil),
		Auth:      rest.NewAuthHandler(authService, userService, logger),
		Records:   rest.NewRecordHandler(recordService, leaderboardService, logger),
		Weather:   rest.NewWeatherHandler(weatherProvider, logger),
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Upload:    config.UploadConfig{Dir: avatars.Dir(), URLPrefix: cfg.Upload.URLPrefix, MaxBytes: cfg.Upload.MaxBytes},
	}), nil
}

// Serve runs srv on ln until ctx is done, then shuts it down within the
// configured timeout.
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
