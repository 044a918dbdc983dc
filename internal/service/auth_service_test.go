package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"refearn/config"
	"refearn/internal/repository"
	"refearn/internal/store"
)

func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	fs, err := store.New(t.TempDir())
	require.NoError(t, err)
	return repository.NewJSONRepositories(fs)
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWT:      config.JWTConfig{Secret: "test-secret", Expiry: time.Hour, Issuer: "refearn"},
		Referral: config.ReferralConfig{Bonus: 10},
	}
}

func newTestAuthService(t *testing.T) (*AuthService, *repository.Repositories) {
	t.Helper()
	repos := newTestRepos(t)
	cfg := newTestConfig()
	referralSvc := NewReferralService(repos, cfg.Referral.Bonus, zap.NewNop().Sugar())
	return NewAuthService(cfg, repos.Users, referralSvc), repos
}

func TestRegisterIssuesTokenAndCode(t *testing.T) {
	svc, _ := newTestAuthService(t)

	u, token, err := svc.Register("9990001111", "secret", "Alice Smith", "")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Regexp(t, regexp.MustCompile(`^alic[0-9a-z]{4}$`), u.ReferralCode)
	assert.Zero(t, u.Earnings)
	assert.Zero(t, u.ReferralsCount)
	assert.Empty(t, u.ReferredBy)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc, repos := newTestAuthService(t)

	_, _, err := svc.Register("9990001111", "secret", "Alice Smith", "")
	require.NoError(t, err)

	_, _, err = svc.Register("9990001111", "other", "Another Alice", "")
	assert.ErrorIs(t, err, ErrPhoneExists)

	users, err := repos.Users.List()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegisterWithReferralCreditsReferrer(t *testing.T) {
	svc, repos := newTestAuthService(t)

	a, _, err := svc.Register("1110000000", "pw", "Alice Smith", "")
	require.NoError(t, err)

	b, _, err := svc.Register("2220000000", "pw", "Bob Jones", a.ReferralCode)
	require.NoError(t, err)
	assert.Equal(t, a.ReferralCode, b.ReferredBy)

	referrer, err := repos.Users.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, referrer.Earnings)
	assert.Equal(t, 1, referrer.ReferralsCount)

	refs, err := repos.Referrals.ListByReferrer(a.ID)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, b.ID, refs[0].NewUserID)
	assert.Equal(t, 10.0, refs[0].Amount)

	txs, err := repos.Transactions.ListByUser(a.ID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "referral", txs[0].Type)
	assert.Equal(t, 10.0, txs[0].Amount)
}

func TestRegisterWithUnknownReferralIsNoop(t *testing.T) {
	svc, repos := newTestAuthService(t)

	a, _, err := svc.Register("1110000000", "pw", "Alice Smith", "")
	require.NoError(t, err)

	_, _, err = svc.Register("2220000000", "pw", "Bob Jones", "nosuchcode")
	require.NoError(t, err)

	referrer, err := repos.Users.GetByID(a.ID)
	require.NoError(t, err)
	assert.Zero(t, referrer.Earnings)
	assert.Zero(t, referrer.ReferralsCount)

	txs, err := repos.Transactions.ListByUser(a.ID)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, _, err := svc.Register("1110000000", "pw", "Alice Smith", "")
	require.NoError(t, err)

	u, token, err := svc.Login("1110000000", "pw")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Alice Smith", u.Name)

	_, _, err = svc.Login("1110000000", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCreds)

	_, _, err = svc.Login("0000000000", "pw")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestReferralCodeUniquenessRetry(t *testing.T) {
	svc, repos := newTestAuthService(t)

	// Many users sharing a first name must still end up with distinct codes.
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		u, _, err := svc.Register("555000000"+string(rune('0'+i)), "pw", "Sam Lee", "")
		require.NoError(t, err)
		assert.False(t, seen[u.ReferralCode], "duplicate referral code %s", u.ReferralCode)
		seen[u.ReferralCode] = true
	}
	users, err := repos.Users.List()
	require.NoError(t, err)
	assert.Len(t, users, 10)
}
