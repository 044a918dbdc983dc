// Package repository defines the storage contract used by the services and its two
// backends: the JSON file store and MySQL.
package repository

import (
	"errors"

	"refearn/internal/models"
)

// ErrNotFound is returned when a looked-up record does not exist, regardless of
// which backend is in use.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(u *models.User) error
	GetByID(id string) (*models.User, error)
	GetByPhone(phone string) (*models.User, error)
	GetByReferralCode(code string) (*models.User, error)
	Update(u *models.User) error
	List() ([]models.User, error)
}

type ReferralRepository interface {
	Create(r *models.Referral) error
	ListByReferrer(referrerID string) ([]models.Referral, error)
}

type TransactionRepository interface {
	Create(t *models.Transaction) error
	ListByUser(userID string) ([]models.Transaction, error)
}

type WithdrawalRepository interface {
	Create(w *models.Withdrawal) error
	ListByUser(userID string) ([]models.Withdrawal, error)
}

// Repositories bundles one repository per collection, all backed by the same store.
type Repositories struct {
	Users        UserRepository
	Referrals    ReferralRepository
	Transactions TransactionRepository
	Withdrawals  WithdrawalRepository
}
