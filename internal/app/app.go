package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	server "github.com/Erebuz/3-api-validator/internal/adapters/primary/http"
	healthcheckController "github.com/Erebuz/3-api-validator/internal/adapters/primary/http/controllers/healthcheck"
	methodController "github.com/Erebuz/3-api-validator/internal/adapters/primary/http/controllers/method"
	redisAdapter "github.com/Erebuz/3-api-validator/internal/adapters/secondary/storage/redis"
	"github.com/Erebuz/3-api-validator/internal/pkg/logger"
	"github.com/Erebuz/3-api-validator/internal/ports/store"
	"github.com/Erebuz/3-api-validator/internal/usecases/scoring"
	"golang.org/x/sync/errgroup"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) *App {
	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  logger.New(name, cfg.Log),
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Log.Info("running scoring api")

	kv, err := a.initStore()
	if err != nil {
		return fmt.Errorf("failed to init store: %w", err)
	}

	scoringService := scoring.New(kv, a.Cfg.Auth, a.Log)
	methodCtrl := methodController.New(scoringService, a.Log)
	healthCheck := healthcheckController.New(kv, a.Log)

	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log, healthCheck, methodCtrl)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("starting http server",
			"host", a.Cfg.Server.Host,
			"port", a.Cfg.Server.Port)

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.Log.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.Log.Error("failed to shutdown http server", "error", err)
		}

		if err := kv.Close(); err != nil {
			a.Log.Error("failed to close store", "error", err)
		}

		a.Log.Info("application shutdown completed")
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Log.Error("application error", "error", err)
		return err
	}

	return nil
}

func (a *App) initStore() (store.Store, error) {
	rdb, err := a.Cfg.Redis.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	a.Log.Info("redis connected successfully")

	return redisAdapter.NewStore(rdb), nil
}
