package service

import (
	"context"

	"github.com/GlebRadaev/onewin/internal/config"
	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/internal/handlers/accounts"
	"github.com/GlebRadaev/onewin/internal/handlers/auth"
	"github.com/GlebRadaev/onewin/internal/handlers/bank"
	"github.com/GlebRadaev/onewin/internal/handlers/clans"
	"github.com/GlebRadaev/onewin/internal/handlers/games"
	accountservice "github.com/GlebRadaev/onewin/internal/service/accountservice"
	authservice "github.com/GlebRadaev/onewin/internal/service/authservice"
	clanservice "github.com/GlebRadaev/onewin/internal/service/clanservice"
	gameservice "github.com/GlebRadaev/onewin/internal/service/gameservice"
	ledgerservice "github.com/GlebRadaev/onewin/internal/service/ledgerservice"
	pkgauth "github.com/GlebRadaev/onewin/pkg/auth"
	"github.com/GlebRadaev/onewin/pkg/clock"
	"github.com/GlebRadaev/onewin/pkg/random"
)

// Store is the gated snapshot every service mutates through.
type Store interface {
	WithExclusiveAccess(ctx context.Context, fn func(snap *domain.Snapshot) error) error
	Read(ctx context.Context) (*domain.Snapshot, error)
}

type Services struct {
	AuthService    auth.Service
	LedgerService  bank.Service
	GameService    games.Service
	ClanService    clans.Service
	AccountService accounts.Service
}

func New(store Store, cfg *config.Config, jwtService pkgauth.JWTServiceInterface, clk clock.Clock, rnd random.Source) *Services {
	authService := authservice.New(store, &pkgauth.HashService{}, jwtService, clk, authservice.Options{
		StartingBalance: cfg.Economy.StartingBalance,
		AdminEmail:      cfg.AdminEmail,
		TokenTTL:        cfg.TokenTTL,
	})

	return &Services{
		AuthService:    authService,
		LedgerService:  ledgerservice.New(store, clk, rnd, cfg.Economy),
		GameService:    gameservice.New(store, clk, rnd, cfg.Economy.RocketCrashChance),
		ClanService:    clanservice.New(store, clk, cfg.Economy.ClanCreationCost),
		AccountService: accountservice.New(store, clk, rnd),
	}
}
