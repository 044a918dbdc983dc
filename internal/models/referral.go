package models

import "time"

// Referral is the immutable audit record of one referred signup: who referred,
// who signed up, and the bonus that was credited. Created once, never updated.
type Referral struct {
	ID         string    `json:"id" gorm:"primaryKey;size:32"`
	ReferrerID string    `json:"referrerId" gorm:"index;size:32;not null"`
	NewUserID  string    `json:"newUserId" gorm:"uniqueIndex;size:32;not null"`
	Amount     float64   `json:"amount" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Referral) TableName() string { return "referrals" }
