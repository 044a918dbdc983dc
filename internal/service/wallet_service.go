package service

import (
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"refearn/internal/domain"
	"refearn/internal/models"
	"refearn/internal/repository"
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// WalletService exposes the balance view and the withdrawal workflow. Balance is
// the user's earnings field; a withdrawal debits it immediately and the request
// then stays pending, with settlement handled outside the system.
type WalletService struct {
	users        repository.UserRepository
	transactions repository.TransactionRepository
	withdrawals  repository.WithdrawalRepository
	logger       *zap.SugaredLogger
}

func NewWalletService(repos *repository.Repositories, logger *zap.SugaredLogger) *WalletService {
	return &WalletService{
		users:        repos.Users,
		transactions: repos.Transactions,
		withdrawals:  repos.Withdrawals,
		logger:       logger,
	}
}

type WalletOverview struct {
	User         models.User
	Transactions []models.Transaction
	Withdraws    []models.Withdrawal
}

// Overview returns the user with their full transaction and withdrawal history,
// both in creation order.
func (s *WalletService) Overview(userID string) (*WalletOverview, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	txs, err := s.transactions.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	ws, err := s.withdrawals.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return &WalletOverview{User: *u, Transactions: txs, Withdraws: ws}, nil
}

// Withdraw debits the amount from the user's earnings and records a pending
// withdrawal plus the matching negative ledger entry. The balance can never go
// negative: an amount above the current earnings is rejected outright.
func (s *WalletService) Withdraw(userID string, amount float64, method, details string) (*models.Withdrawal, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}
	u, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u.Earnings < amount {
		return nil, ErrInsufficientBalance
	}

	u.Earnings -= amount
	if err := s.users.Update(u); err != nil {
		return nil, err
	}

	if method == "" {
		method = domain.DefaultWithdrawMethod
	}
	now := time.Now().UTC()
	w := &models.Withdrawal{
		ID:        models.NewID("w"),
		UserID:    u.ID,
		Amount:    amount,
		Method:    method,
		Details:   details,
		Status:    domain.WithdrawalStatusPending,
		CreatedAt: now,
	}
	if err := s.withdrawals.Create(w); err != nil {
		return nil, err
	}
	if err := s.transactions.Create(&models.Transaction{
		ID:        models.NewID("t"),
		UserID:    u.ID,
		Type:      domain.TxTypeWithdraw,
		Amount:    -amount,
		CreatedAt: now,
	}); err != nil {
		s.logger.Errorw("withdraw transaction write failed", "user", u.ID, "error", err)
		return nil, err
	}
	return w, nil
}
