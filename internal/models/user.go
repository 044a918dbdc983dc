package models

import "time"

// User is a registered member. The JSON tags are the persisted record shape in the
// file store; the gorm tags drive the MySQL backend schema. PasswordHash is part of
// the stored record but never leaves the API (see PublicUser).
type User struct {
	ID             string    `json:"id" gorm:"primaryKey;size:32"`
	Phone          string    `json:"phone" gorm:"uniqueIndex;size:20;not null"`
	Name           string    `json:"name" gorm:"size:128;not null"`
	PasswordHash   string    `json:"passwordHash" gorm:"size:255;not null"`
	ReferralCode   string    `json:"referralCode" gorm:"uniqueIndex;size:20;not null"`
	ReferredBy     string    `json:"referredBy" gorm:"size:20"`
	ReferralsCount int       `json:"referralsCount" gorm:"not null;default:0"`
	Earnings       float64   `json:"earnings" gorm:"not null;default:0"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (User) TableName() string { return "users" }

// PublicUser is the API view of a user, with the password hash stripped.
type PublicUser struct {
	ID             string    `json:"id"`
	Phone          string    `json:"phone"`
	Name           string    `json:"name"`
	ReferralCode   string    `json:"referralCode"`
	ReferredBy     string    `json:"referredBy"`
	ReferralsCount int       `json:"referralsCount"`
	Earnings       float64   `json:"earnings"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Phone:          u.Phone,
		Name:           u.Name,
		ReferralCode:   u.ReferralCode,
		ReferredBy:     u.ReferredBy,
		ReferralsCount: u.ReferralsCount,
		Earnings:       u.Earnings,
		CreatedAt:      u.CreatedAt,
	}
}
