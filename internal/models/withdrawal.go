package models

import "time"

// Withdrawal is a user-initiated payout request. The balance is debited the moment
// the request is recorded; settlement is manual and out of band, so status stays
// "pending" — no code path transitions it.
type Withdrawal struct {
	ID        string    `json:"id" gorm:"primaryKey;size:32"`
	UserID    string    `json:"userId" gorm:"index;size:32;not null"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Method    string    `json:"method" gorm:"size:64;not null"`
	Details   string    `json:"details" gorm:"size:255"`
	Status    string    `json:"status" gorm:"size:20;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Withdrawal) TableName() string { return "withdraws" }
