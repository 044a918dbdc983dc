package service

import (
	"time"

	"go.uber.org/zap"

	"refearn/internal/domain"
	"refearn/internal/models"
	"refearn/internal/repository"
)

// ReferralService credits a referrer when a referred user completes registration.
type ReferralService struct {
	users        repository.UserRepository
	referrals    repository.ReferralRepository
	transactions repository.TransactionRepository
	bonus        float64
	logger       *zap.SugaredLogger
}

func NewReferralService(repos *repository.Repositories, bonus float64, logger *zap.SugaredLogger) *ReferralService {
	return &ReferralService{
		users:        repos.Users,
		referrals:    repos.Referrals,
		transactions: repos.Transactions,
		bonus:        bonus,
		logger:       logger,
	}
}

// Credit resolves a referral code to its owner and applies the signup bonus:
// referral count +1, earnings +bonus, one referral event, one ledger entry.
// An unknown code, or the new user's own code, is silently ignored — invalid codes
// are never reported back to the registrant. Runs after the user record already
// exists, so a failure here leaves the signup intact and only the credit missing.
func (s *ReferralService) Credit(code string, newUser *models.User) {
	if code == "" {
		return
	}
	referrer, err := s.users.GetByReferralCode(code)
	if err != nil || referrer.ID == newUser.ID {
		return
	}

	referrer.ReferralsCount++
	referrer.Earnings += s.bonus
	if err := s.users.Update(referrer); err != nil {
		s.logger.Errorw("referral credit failed", "referrer", referrer.ID, "error", err)
		return
	}

	now := time.Now().UTC()
	if err := s.referrals.Create(&models.Referral{
		ID:         models.NewID("r"),
		ReferrerID: referrer.ID,
		NewUserID:  newUser.ID,
		Amount:     s.bonus,
		CreatedAt:  now,
	}); err != nil {
		s.logger.Errorw("referral event write failed", "referrer", referrer.ID, "error", err)
	}
	if err := s.transactions.Create(&models.Transaction{
		ID:        models.NewID("t"),
		UserID:    referrer.ID,
		Type:      domain.TxTypeReferral,
		Amount:    s.bonus,
		CreatedAt: now,
	}); err != nil {
		s.logger.Errorw("referral transaction write failed", "referrer", referrer.ID, "error", err)
	}
}
