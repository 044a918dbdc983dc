package repository

import (
	"refearn/internal/models"
	"refearn/internal/store"
)

// NewJSONRepositories builds the file-store backend: whole-collection reads and
// writes guarded by the store's per-collection mutexes.
func NewJSONRepositories(fs *store.FileStore) *Repositories {
	return &Repositories{
		Users:        &jsonUserRepository{fs: fs},
		Referrals:    &jsonReferralRepository{fs: fs},
		Transactions: &jsonTransactionRepository{fs: fs},
		Withdrawals:  &jsonWithdrawalRepository{fs: fs},
	}
}

type jsonUserRepository struct {
	fs *store.FileStore
}

func (r *jsonUserRepository) Create(u *models.User) error {
	mu := r.fs.Lock(store.Users)
	mu.Lock()
	defer mu.Unlock()

	var users []models.User
	if err := r.fs.Load(store.Users, &users); err != nil {
		return err
	}
	users = append(users, *u)
	return r.fs.Save(store.Users, users)
}

func (r *jsonUserRepository) GetByID(id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func (r *jsonUserRepository) GetByPhone(phone string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Phone == phone })
}

func (r *jsonUserRepository) GetByReferralCode(code string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ReferralCode == code })
}

func (r *jsonUserRepository) find(match func(*models.User) bool) (*models.User, error) {
	mu := r.fs.Lock(store.Users)
	mu.Lock()
	defer mu.Unlock()

	var users []models.User
	if err := r.fs.Load(store.Users, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if match(&users[i]) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// Update replaces the stored record matching u.ID under the collection lock, so a
// concurrent update to another user in the same file is not lost.
func (r *jsonUserRepository) Update(u *models.User) error {
	mu := r.fs.Lock(store.Users)
	mu.Lock()
	defer mu.Unlock()

	var users []models.User
	if err := r.fs.Load(store.Users, &users); err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == u.ID {
			users[i] = *u
			return r.fs.Save(store.Users, users)
		}
	}
	return ErrNotFound
}

func (r *jsonUserRepository) List() ([]models.User, error) {
	mu := r.fs.Lock(store.Users)
	mu.Lock()
	defer mu.Unlock()

	var users []models.User
	if err := r.fs.Load(store.Users, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type jsonReferralRepository struct {
	fs *store.FileStore
}

func (r *jsonReferralRepository) Create(ref *models.Referral) error {
	mu := r.fs.Lock(store.Referrals)
	mu.Lock()
	defer mu.Unlock()

	var refs []models.Referral
	if err := r.fs.Load(store.Referrals, &refs); err != nil {
		return err
	}
	refs = append(refs, *ref)
	return r.fs.Save(store.Referrals, refs)
}

func (r *jsonReferralRepository) ListByReferrer(referrerID string) ([]models.Referral, error) {
	mu := r.fs.Lock(store.Referrals)
	mu.Lock()
	defer mu.Unlock()

	var refs []models.Referral
	if err := r.fs.Load(store.Referrals, &refs); err != nil {
		return nil, err
	}
	out := make([]models.Referral, 0, len(refs))
	for _, ref := range refs {
		if ref.ReferrerID == referrerID {
			out = append(out, ref)
		}
	}
	return out, nil
}

type jsonTransactionRepository struct {
	fs *store.FileStore
}

func (r *jsonTransactionRepository) Create(t *models.Transaction) error {
	mu := r.fs.Lock(store.Transactions)
	mu.Lock()
	defer mu.Unlock()

	var txs []models.Transaction
	if err := r.fs.Load(store.Transactions, &txs); err != nil {
		return err
	}
	txs = append(txs, *t)
	return r.fs.Save(store.Transactions, txs)
}

func (r *jsonTransactionRepository) ListByUser(userID string) ([]models.Transaction, error) {
	mu := r.fs.Lock(store.Transactions)
	mu.Lock()
	defer mu.Unlock()

	var txs []models.Transaction
	if err := r.fs.Load(store.Transactions, &txs); err != nil {
		return nil, err
	}
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

type jsonWithdrawalRepository struct {
	fs *store.FileStore
}

func (r *jsonWithdrawalRepository) Create(w *models.Withdrawal) error {
	mu := r.fs.Lock(store.Withdraws)
	mu.Lock()
	defer mu.Unlock()

	var ws []models.Withdrawal
	if err := r.fs.Load(store.Withdraws, &ws); err != nil {
		return err
	}
	ws = append(ws, *w)
	return r.fs.Save(store.Withdraws, ws)
}

func (r *jsonWithdrawalRepository) ListByUser(userID string) ([]models.Withdrawal, error) {
	mu := r.fs.Lock(store.Withdraws)
	mu.Lock()
	defer mu.Unlock()

	var ws []models.Withdrawal
	if err := r.fs.Load(store.Withdraws, &ws); err != nil {
		return nil, err
	}
	out := make([]models.Withdrawal, 0, len(ws))
	for _, w := range ws {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}
