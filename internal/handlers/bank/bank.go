package bank

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/onewin/internal/domain"
	"github.com/GlebRadaev/onewin/internal/dto"
	"github.com/GlebRadaev/onewin/pkg/auth"
	"github.com/GlebRadaev/onewin/pkg/utils"
)

type Service interface {
	Deposit(ctx context.Context, accountID string, amount int64) (domain.Balances, error)
	Withdraw(ctx context.Context, accountID string, amount int64) (domain.Balances, error)
	BankTransfer(ctx context.Context, accountID, toBankAccount string, amount int64) (domain.Balances, error)
	ClaimBonus(ctx context.Context, accountID string) (domain.BonusClaim, error)
	History(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

type BankHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BankHandler {
	return &BankHandler{
		ledgerService: ledgerService,
	}
}

func decodeAmount(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var req dto.AmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return 0, false
	}
	return req.Amount, true
}

// ClaimBonus godoc
//
//	@Summary		Claim the daily bonus
//	@Description	Credits a random bonus once per 24 hours. VIP accounts receive a doubled amount.
//	@Tags			Bank
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.BonusClaim
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		429	{object}	utils.Response	"Bonus already claimed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bonus [post]
func (h *BankHandler) ClaimBonus(w http.ResponseWriter, r *http.Request) {
	claim, err := h.ledgerService.ClaimBonus(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, claim)
}

// Deposit godoc
//
//	@Summary		Move funds into the bank
//	@Tags			Bank
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount"
//	@Success		200		{object}	domain.Balances
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bank/deposit [post]
func (h *BankHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}
	balances, err := h.ledgerService.Deposit(r.Context(), auth.UserID(r.Context()), amount)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balances)
}

// Withdraw godoc
//
//	@Summary		Move funds out of the bank
//	@Tags			Bank
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.AmountRequestDTO	true	"Amount"
//	@Success		200		{object}	domain.Balances
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		402		{object}	utils.Response	"Insufficient bank funds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bank/withdraw [post]
func (h *BankHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}
	balances, err := h.ledgerService.Withdraw(r.Context(), auth.UserID(r.Context()), amount)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balances)
}

// Transfer godoc
//
//	@Summary		Pay into another account's bank
//	@Description	The recipient is addressed by its 10-digit bank account number
//	@Tags			Bank
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer request"
//	@Success		200		{object}	domain.Balances
//	@Failure		400		{object}	utils.Response	"Invalid amount or self transfer"
//	@Failure		402		{object}	utils.Response	"Insufficient funds"
//	@Failure		404		{object}	utils.Response	"Recipient not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bank/transfer [post]
func (h *BankHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	balances, err := h.ledgerService.BankTransfer(r.Context(), auth.UserID(r.Context()), req.ToAccount, req.Amount)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balances)
}

// GetTransactions godoc
//
//	@Summary		Transaction history
//	@Description	Returns the caller's transactions, newest first
//	@Tags			Bank
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.TransactionsResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions [get]
func (h *BankHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.ledgerService.History(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionsResponseDTO{Transactions: txs})
}
