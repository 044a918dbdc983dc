package service

import (
	"crypto/rand"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"refearn/config"
	"refearn/internal/auth"
	"refearn/internal/models"
	"refearn/internal/repository"
)

var (
	ErrPhoneExists  = errors.New("phone already registered")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidCreds = errors.New("invalid credentials")
)

type AuthService struct {
	cfg         *config.Config
	users       repository.UserRepository
	referralSvc *ReferralService
}

func NewAuthService(cfg *config.Config, users repository.UserRepository, referralSvc *ReferralService) *AuthService {
	return &AuthService{cfg: cfg, users: users, referralSvc: referralSvc}
}

// Register creates a user, applies the referral credit when a code was supplied,
// and issues a session token. The credit happens after the user record is written,
// so a crash in between leaves the user registered with no credit applied.
func (s *AuthService) Register(phone, password, name, ref string) (*models.User, string, error) {
	_, err := s.users.GetByPhone(phone)
	if err == nil {
		return nil, "", ErrPhoneExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	code, err := s.generateReferralCode(name)
	if err != nil {
		return nil, "", err
	}

	u := &models.User{
		ID:           models.NewID("u"),
		Phone:        phone,
		Name:         name,
		PasswordHash: string(hash),
		ReferralCode: code,
		ReferredBy:   ref,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(u); err != nil {
		return nil, "", err
	}

	s.referralSvc.Credit(ref, u)

	token, err := auth.GenerateToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Login(phone, password string) (*models.User, string, error) {
	u, err := s.users.GetByPhone(phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCreds
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

const codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b), nil
}

// generateReferralCode derives a shareable code from the first name plus a random
// suffix, retrying until the code is unique among existing users.
func (s *AuthService) generateReferralCode(name string) (string, error) {
	first := "user"
	if fields := strings.Fields(name); len(fields) > 0 {
		first = strings.ToLower(fields[0])
	}
	if r := []rune(first); len(r) > 4 {
		first = string(r[:4])
	}
	for i := 0; i < 10; i++ {
		suffix, err := randomSuffix(4)
		if err != nil {
			return "", err
		}
		code := first + suffix
		_, err = s.users.GetByReferralCode(code)
		if errors.Is(err, repository.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
		// collision, retry with a new suffix
	}
	return "", errors.New("could not generate a unique referral code")
}
