package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refearn/internal/models"
	"refearn/internal/store"
)

func newTestRepos(t *testing.T) *Repositories {
	t.Helper()
	fs, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewJSONRepositories(fs)
}

func testUser(id, phone, code string) *models.User {
	return &models.User{
		ID:           id,
		Phone:        phone,
		Name:         "Test User",
		PasswordHash: "x",
		ReferralCode: code,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestUserLookups(t *testing.T) {
	repos := newTestRepos(t)
	require.NoError(t, repos.Users.Create(testUser("u_1", "100", "alice1")))
	require.NoError(t, repos.Users.Create(testUser("u_2", "200", "bob22")))

	byID, err := repos.Users.GetByID("u_2")
	require.NoError(t, err)
	assert.Equal(t, "200", byID.Phone)

	byPhone, err := repos.Users.GetByPhone("100")
	require.NoError(t, err)
	assert.Equal(t, "u_1", byPhone.ID)

	byCode, err := repos.Users.GetByReferralCode("bob22")
	require.NoError(t, err)
	assert.Equal(t, "u_2", byCode.ID)

	_, err = repos.Users.GetByPhone("300")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserUpdatePersists(t *testing.T) {
	repos := newTestRepos(t)
	u := testUser("u_1", "100", "alice1")
	require.NoError(t, repos.Users.Create(u))

	u.Earnings = 30
	u.ReferralsCount = 3
	require.NoError(t, repos.Users.Update(u))

	got, err := repos.Users.GetByID("u_1")
	require.NoError(t, err)
	assert.Equal(t, 30.0, got.Earnings)
	assert.Equal(t, 3, got.ReferralsCount)
}

func TestUserUpdateUnknownID(t *testing.T) {
	repos := newTestRepos(t)
	err := repos.Users.Update(testUser("u_missing", "100", "x"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserListKeepsInsertionOrder(t *testing.T) {
	repos := newTestRepos(t)
	for _, u := range []*models.User{
		testUser("u_1", "100", "a"),
		testUser("u_2", "200", "b"),
		testUser("u_3", "300", "c"),
	} {
		require.NoError(t, repos.Users.Create(u))
	}

	users, err := repos.Users.List()
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "u_1", users[0].ID)
	assert.Equal(t, "u_3", users[2].ID)
}

func TestTransactionsFilterByUser(t *testing.T) {
	repos := newTestRepos(t)
	require.NoError(t, repos.Transactions.Create(&models.Transaction{ID: "t_1", UserID: "u_1", Type: "referral", Amount: 10}))
	require.NoError(t, repos.Transactions.Create(&models.Transaction{ID: "t_2", UserID: "u_2", Type: "referral", Amount: 10}))
	require.NoError(t, repos.Transactions.Create(&models.Transaction{ID: "t_3", UserID: "u_1", Type: "withdraw", Amount: -5}))

	txs, err := repos.Transactions.ListByUser("u_1")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "t_1", txs[0].ID)
	assert.Equal(t, "t_3", txs[1].ID)
}

func TestWithdrawalsAndReferralsFilter(t *testing.T) {
	repos := newTestRepos(t)
	require.NoError(t, repos.Withdrawals.Create(&models.Withdrawal{ID: "w_1", UserID: "u_1", Amount: 5, Status: "pending"}))
	require.NoError(t, repos.Withdrawals.Create(&models.Withdrawal{ID: "w_2", UserID: "u_2", Amount: 7, Status: "pending"}))
	require.NoError(t, repos.Referrals.Create(&models.Referral{ID: "r_1", ReferrerID: "u_1", NewUserID: "u_9", Amount: 10}))

	ws, err := repos.Withdrawals.ListByUser("u_1")
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "w_1", ws[0].ID)

	refs, err := repos.Referrals.ListByReferrer("u_1")
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "u_9", refs[0].NewUserID)
}
