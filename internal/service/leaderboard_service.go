package service

import (
	"context"
	"encoding/json"
	"peerlearn_backend/internal/repository"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	leaderboardSize     = 50
	leaderboardCacheKey = "leaderboard:coins"
	leaderboardCacheTTL = 30 * time.Second
)

// LeaderboardEntry is the public projection of a ranked user.
type LeaderboardEntry struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Coins                  int    `json:"coins"`
	TotalCoursesCompleted  int    `json:"total_courses_completed"`
	TotalSessionsCompleted int    `json:"total_sessions_completed"`
}

type LeaderboardService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
}

func NewLeaderboardService(userRepo *repository.UserRepository, rdb *redis.Client) *LeaderboardService {
	return &LeaderboardService{
		UserRepo: userRepo,
		Redis:    rdb,
	}
}

// GetLeaderboard returns up to 50 users ordered by coin balance descending.
// A short-lived Redis snapshot absorbs repeated reads; without Redis the
// query goes straight to the database.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Result()
		if err == nil {
			var entries []LeaderboardEntry
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	users, err := s.UserRepo.FindTopByCoins(leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			ID:                     u.ID,
			Name:                   u.Name,
			Coins:                  u.Coins,
			TotalCoursesCompleted:  u.TotalCoursesCompleted,
			TotalSessionsCompleted: u.TotalSessionsCompleted,
		})
	}

	if s.Redis != nil {
		if data, err := json.Marshal(entries); err == nil {
			s.Redis.Set(ctx, leaderboardCacheKey, data, leaderboardCacheTTL)
		}
	}

	return entries, nil
}
