package service

import (
	"sort"

	"refearn/internal/models"
	"refearn/internal/repository"
)

const leaderboardSize = 20

type LeaderboardEntry struct {
	Name      string  `json:"name"`
	Earnings  float64 `json:"earnings"`
	Referrals int     `json:"referrals"`
}

type Leaderboard struct {
	TopByEarnings  []LeaderboardEntry `json:"topByEarnings"`
	TopByReferrals []LeaderboardEntry `json:"topByReferrals"`
}

// LeaderboardService recomputes the rankings from the full user set on every call.
type LeaderboardService struct {
	users repository.UserRepository
}

func NewLeaderboardService(users repository.UserRepository) *LeaderboardService {
	return &LeaderboardService{users: users}
}

// Compute ranks all users by earnings and by referral count, descending, capped at
// the top 20 each. Ties keep store order (stable sort over insertion order).
func (s *LeaderboardService) Compute() (*Leaderboard, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}

	byEarnings := make([]models.User, len(users))
	copy(byEarnings, users)
	sort.SliceStable(byEarnings, func(i, j int) bool {
		return byEarnings[i].Earnings > byEarnings[j].Earnings
	})

	byReferrals := make([]models.User, len(users))
	copy(byReferrals, users)
	sort.SliceStable(byReferrals, func(i, j int) bool {
		return byReferrals[i].ReferralsCount > byReferrals[j].ReferralsCount
	})

	return &Leaderboard{
		TopByEarnings:  toEntries(byEarnings),
		TopByReferrals: toEntries(byReferrals),
	}, nil
}

func toEntries(users []models.User) []LeaderboardEntry {
	if len(users) > leaderboardSize {
		users = users[:leaderboardSize]
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			Name:      u.Name,
			Earnings:  u.Earnings,
			Referrals: u.ReferralsCount,
		})
	}
	return entries
}
