package models

import "time"

// Transaction is an immutable ledger entry against a user's balance.
// Amount is signed: positive for a referral credit, negative for a withdrawal debit.
type Transaction struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	UserID    string    `json:"userId" gorm:"index;size:32;not null"`
	Type      string    `json:"type" gorm:"size:20;not null"` // referral | withdraw
	Amount    float64   `json:"amount" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Transaction) TableName() string { return "transactions" }
