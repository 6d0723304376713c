package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/onewin/docs"
	accountshandlers "github.com/GlebRadaev/onewin/internal/handlers/accounts"
	authhandlers "github.com/GlebRadaev/onewin/internal/handlers/auth"
	bankhandlers "github.com/GlebRadaev/onewin/internal/handlers/bank"
	clanshandlers "github.com/GlebRadaev/onewin/internal/handlers/clans"
	gameshandlers "github.com/GlebRadaev/onewin/internal/handlers/games"
	"github.com/GlebRadaev/onewin/internal/service"
	"github.com/GlebRadaev/onewin/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BankHandler interface {
	ClaimBonus(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type GamesHandler interface {
	Slots(w http.ResponseWriter, r *http.Request)
	Rocket(w http.ResponseWriter, r *http.Request)
	Basketball(w http.ResponseWriter, r *http.Request)
}

type ClansHandler interface {
	CreateClan(w http.ResponseWriter, r *http.Request)
	JoinClan(w http.ResponseWriter, r *http.Request)
	ListClans(w http.ResponseWriter, r *http.Request)
	GetMessages(w http.ResponseWriter, r *http.Request)
	SendMessage(w http.ResponseWriter, r *http.Request)
	Donate(w http.ResponseWriter, r *http.Request)
	Action(w http.ResponseWriter, r *http.Request)
}

type AccountsHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	Leaderboard(w http.ResponseWriter, r *http.Request)
	Statuses(w http.ResponseWriter, r *http.Request)
	BuyStatus(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	Grant(w http.ResponseWriter, r *http.Request)
	ToggleAdminMode(w http.ResponseWriter, r *http.Request)
	Predict(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	BankHandler     BankHandler
	GamesHandler    GamesHandler
	ClansHandler    ClansHandler
	AccountsHandler AccountsHandler

	tokens auth.TokenValidator
}

func New(s *service.Services, tokens auth.TokenValidator) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		BankHandler:     bankhandlers.New(s.LedgerService),
		GamesHandler:    gameshandlers.New(s.GameService),
		ClansHandler:    clanshandlers.New(s.ClanService),
		AccountsHandler: accountshandlers.New(s.AccountService),
		tokens:          tokens,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Get("/profile/{id}", h.AccountsHandler.GetProfile)
		r.Get("/search-user", h.AccountsHandler.Search)
		r.Get("/leaderboard", h.AccountsHandler.Leaderboard)
		r.Get("/statuses", h.AccountsHandler.Statuses)
		r.Get("/clans", h.ClansHandler.ListClans)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.tokens))

			r.Post("/bonus", h.BankHandler.ClaimBonus)
			r.Route("/bank", func(r chi.Router) {
				r.Post("/deposit", h.BankHandler.Deposit)
				r.Post("/withdraw", h.BankHandler.Withdraw)
				r.Post("/transfer", h.BankHandler.Transfer)
			})
			r.Get("/transactions", h.BankHandler.GetTransactions)

			r.Route("/games", func(r chi.Router) {
				r.Post("/slots", h.GamesHandler.Slots)
				r.Post("/rocket", h.GamesHandler.Rocket)
				r.Post("/basket", h.GamesHandler.Basketball)
			})

			r.Post("/create-clan", h.ClansHandler.CreateClan)
			r.Post("/join-clan", h.ClansHandler.JoinClan)
			r.Route("/clan/{id}", func(r chi.Router) {
				r.Post("/donate", h.ClansHandler.Donate)
				r.Get("/messages", h.ClansHandler.GetMessages)
				r.Post("/message", h.ClansHandler.SendMessage)
				r.Post("/action", h.ClansHandler.Action)
			})

			r.Post("/buy-status", h.AccountsHandler.BuyStatus)
			r.Post("/set-status", h.AccountsHandler.SetStatus)
			r.Route("/admin", func(r chi.Router) {
				r.Post("/grant", h.AccountsHandler.Grant)
				r.Post("/toggle-mode", h.AccountsHandler.ToggleAdminMode)
				r.Get("/predict", h.AccountsHandler.Predict)
			})
		})
	})

	return r
}
