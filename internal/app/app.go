package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/onewin/internal/awards"
	"github.com/GlebRadaev/onewin/internal/config"
	"github.com/GlebRadaev/onewin/internal/gate"
	"github.com/GlebRadaev/onewin/internal/handlers"
	"github.com/GlebRadaev/onewin/internal/repo"
	"github.com/GlebRadaev/onewin/internal/service"
	"github.com/GlebRadaev/onewin/pkg/auth"
	"github.com/GlebRadaev/onewin/pkg/clock"
	"github.com/GlebRadaev/onewin/pkg/logger"
	"github.com/GlebRadaev/onewin/pkg/random"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg    *config.Config
	api    *handlers.Handlers
	srv    *service.Services
	repo   *repo.Repositories
	awards *awards.Service
	addr   net.Addr

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	return a.start(ctx, cfg)
}

func (a *Application) start(ctx context.Context, cfg *config.Config) error {
	repos, err := repo.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't open snapshot store: %w", err)
	}

	store := gate.New(repos.Snapshot)
	clk := clock.Real{}
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	a.cfg = cfg
	a.repo = repos
	a.srv = service.New(store, cfg, jwtService, clk, random.New())
	a.api = handlers.New(a.srv, jwtService)
	a.awards = awards.New(store, clk, cfg.AwardsInterval)

	if err = a.startHTTPServer(ctx); err != nil {
		repos.Close()
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startAwardsService(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}

	listener, err := net.Listen("tcp", a.cfg.Address)
	if err != nil {
		return err
	}
	a.addr = listener.Addr()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.addr.String()))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startAwardsService(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.awards.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if a.repo != nil {
		a.repo.Close()
	}

	return appErr
}
