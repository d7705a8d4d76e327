package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/c14220110/clinic-portal/config"
	"github.com/c14220110/clinic-portal/internal/apiclient"
	"github.com/c14220110/clinic-portal/internal/common/middlewares"
	"github.com/c14220110/clinic-portal/internal/common/session"
	"github.com/c14220110/clinic-portal/internal/routes"
	"github.com/c14220110/clinic-portal/pkg/logger"
	"github.com/c14220110/clinic-portal/pkg/storage/mariadb"
	"github.com/c14220110/clinic-portal/pkg/storage/redis"
	"github.com/c14220110/clinic-portal/pkg/utils"
	"github.com/c14220110/clinic-portal/ws"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Jalankan server portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// sessionStore memilih penyimpanan sesi sesuai SESSION_STORE.
func sessionStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (session.Store, error) {
	switch cfg.SessionStore {
	case "", "memory":
		return session.NewMemoryStore(), nil
	case "redis":
		client, err := redis.Connect(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(client, cfg.SessionTTL), nil
	case "mariadb":
		db, err := mariadb.Connect(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		store := session.NewMariaDBStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("session schema: %w", err)
		}
		go purgeSessions(ctx, store, cfg.SessionTTL, log)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q", cfg.SessionStore)
	}
}

// purgeSessions menghapus baris sesi MariaDB yang lebih tua dari ttl setiap jam.
func purgeSessions(ctx context.Context, store *session.MariaDBStore, ttl time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.Purge(ctx, time.Now().Add(-ttl))
			if err != nil {
				log.Warn("session purge failed", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Info("expired sessions purged", zap.Int64("rows", n))
			}
		}
	}
}

func runServer() error {
	cfg := config.LoadConfig()
	log := logger.New(cfg)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sessionStore(ctx, cfg, log)
	if err != nil {
		return err
	}

	hub := ws.NewHub(log)
	go hub.Run(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = utils.NewValidator()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middlewares.RequestLogger(log))
	e.Use(middlewares.Session(middlewares.SessionConfig{
		Store:  store,
		TTL:    cfg.SessionTTL,
		Secure: cfg.CookieSecure,
	}))

	routes.Init(e, routes.Deps{
		API:                apiclient.New(cfg.APIBaseURL, log),
		Logger:             log,
		Hub:                hub,
		WSBaseURL:          cfg.WSBaseURL,
		LoginRatePerMinute: cfg.LoginRatePerMinute,
	})

	go func() {
		log.Info("server berjalan",
			zap.String("port", cfg.Port),
			zap.String("api", cfg.APIBaseURL),
			zap.String("session_store", cfg.SessionStore),
		)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	<-hub.Stopped()
	log.Info("server stopped")
	return nil
}
