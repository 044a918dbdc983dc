package repository

import (
	"errors"

	"gorm.io/gorm"

	"refearn/internal/models"
)

// NewMySQLRepositories builds the gorm-backed production backend over the same
// repository contract as the file store.
func NewMySQLRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:        &gormUserRepository{db: db},
		Referrals:    &gormReferralRepository{db: db},
		Transactions: &gormTransactionRepository{db: db},
		Withdrawals:  &gormWithdrawalRepository{db: db},
	}
}

func mapGormErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type gormUserRepository struct {
	db *gorm.DB
}

func (r *gormUserRepository) Create(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *gormUserRepository) GetByID(id string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, mapGormErr(err)
	}
	return &u, nil
}

func (r *gormUserRepository) GetByPhone(phone string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("phone = ?", phone).First(&u).Error; err != nil {
		return nil, mapGormErr(err)
	}
	return &u, nil
}

func (r *gormUserRepository) GetByReferralCode(code string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("referral_code = ?", code).First(&u).Error; err != nil {
		return nil, mapGormErr(err)
	}
	return &u, nil
}

func (r *gormUserRepository) Update(u *models.User) error {
	return r.db.Save(u).Error
}

func (r *gormUserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at ASC").Find(&users).Error
	return users, err
}

type gormReferralRepository struct {
	db *gorm.DB
}

func (r *gormReferralRepository) Create(ref *models.Referral) error {
	return r.db.Create(ref).Error
}

func (r *gormReferralRepository) ListByReferrer(referrerID string) ([]models.Referral, error) {
	var refs []models.Referral
	err := r.db.Where("referrer_id = ?", referrerID).Order("created_at ASC").Find(&refs).Error
	return refs, err
}

type gormTransactionRepository struct {
	db *gorm.DB
}

func (r *gormTransactionRepository) Create(t *models.Transaction) error {
	return r.db.Create(t).Error
}

func (r *gormTransactionRepository) ListByUser(userID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&txs).Error
	return txs, err
}

type gormWithdrawalRepository struct {
	db *gorm.DB
}

func (r *gormWithdrawalRepository) Create(w *models.Withdrawal) error {
	return r.db.Create(w).Error
}

func (r *gormWithdrawalRepository) ListByUser(userID string) ([]models.Withdrawal, error) {
	var ws []models.Withdrawal
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&ws).Error
	return ws, err
}
