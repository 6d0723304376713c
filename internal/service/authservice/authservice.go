package authservice

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/pkg/auth"
	"github.com/GlebRadaev/onewin/pkg/clock"
	"github.com/GlebRadaev/onewin/pkg/validate"
)

const MaxNicknameLength = 20

var ErrInvalidCredentials = errors.New("invalid credentials")

type Store interface {
	WithExclusiveAccess(ctx context.Context, fn func(snap *domain.Snapshot) error) error
	Read(ctx context.Context) (*domain.Snapshot, error)
}

type Options struct {
	StartingBalance int64
	AdminEmail      string
	TokenTTL        time.Duration
}

type Service struct {
	store       Store
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	clock       clock.Clock
	opts        Options
}

func New(store Store, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, clk clock.Clock, opts Options) *Service {
	return &Service{
		store:       store,
		hashService: hashService,
		jwtService:  jwtService,
		clock:       clk,
		opts:        opts,
	}
}

func validateRegistration(nickname, email, password string) error {
	if nickname == "" || email == "" || password == "" {
		return fmt.Errorf("%w: missing fields", domain.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(nickname) > MaxNicknameLength {
		return fmt.Errorf("%w: nickname longer than %d characters", domain.ErrInvalidArgument, MaxNicknameLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: bad email", domain.ErrInvalidArgument)
	}
	if len(password) < auth.MinPasswordLength {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, auth.ErrPasswordTooShort)
	}
	return nil
}

// Register creates an account with the starting balance and a fresh bank account.
func (s *Service) Register(ctx context.Context, nickname, email, password string) (domain.Profile, error) {
	nickname = strings.TrimSpace(nickname)
	email = strings.TrimSpace(email)
	if err := validateRegistration(nickname, email, password); err != nil {
		return domain.Profile{}, err
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return domain.Profile{}, err
	}

	var profile domain.Profile
	err = s.store.WithExclusiveAccess(ctx, func(snap *domain.Snapshot) error {
		if snap.NicknameTaken(nickname) {
			return fmt.Errorf("%w: nickname %s", domain.ErrConflict, nickname)
		}
		if snap.EmailTaken(email) {
			return fmt.Errorf("%w: email %s", domain.ErrConflict, email)
		}
		bankAccount, err := validate.NewBankAccount(snap.BankAccountTaken)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		isAdmin := s.opts.AdminEmail != "" && strings.EqualFold(email, s.opts.AdminEmail)
		account := &domain.Account{
			ID:                uuid.NewString(),
			Nickname:          nickname,
			Email:             email,
			PasswordHash:      hashedPassword,
			Balance:           s.opts.StartingBalance,
			BankAccount:       bankAccount,
			Status:            domain.DefaultStatusName,
			PurchasedStatuses: []string{},
			IsAdmin:           isAdmin,
			AdminMode:         isAdmin,
			RegisteredAt:      now,
		}
		snap.Accounts = append(snap.Accounts, account)
		snap.AppendTransaction(domain.Transaction{
			ID:        uuid.NewString(),
			AccountID: account.ID,
			Kind:      domain.TxRegistration,
			Amount:    0,
			CreatedAt: now,
			Info:      "Registered",
		})
		profile = account.Profile(now)
		return nil
	})
	if err != nil {
		zap.L().Info("registration rejected", zap.String("nickname", nickname), zap.Error(err))
		return domain.Profile{}, err
	}

	zap.L().Info("account successfully registered", zap.String("nickname", nickname), zap.Bool("admin", profile.IsAdmin))
	return profile, nil
}

// Authenticate accepts either the nickname or the email as login.
func (s *Service) Authenticate(ctx context.Context, login, password string) (domain.Profile, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	account, err := snap.AccountByLogin(strings.TrimSpace(login))
	if err != nil {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return domain.Profile{}, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(account.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return domain.Profile{}, ErrInvalidCredentials
	}
	zap.L().Info("account successfully authenticated", zap.String("login", login))
	return account.Profile(s.clock.Now()), nil
}

func (s *Service) GenerateToken(accountID string) (string, error) {
	expirationTime := s.clock.Now().Add(s.opts.TokenTTL)

	token, err := s.jwtService.GenerateJWT(accountID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
