package model

import "time"

// swagger:model Reward
type Reward struct {
	UUIDBase
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	CoinCost    int    `gorm:"not null" json:"coin_cost"`
	Image       string `gorm:"size:512" json:"image"`
	Stock       int    `gorm:"default:0" json:"stock"`
}

func (Reward) TableName() string {
	return "rewards"
}

// UserReward is an append-only redemption receipt.
// swagger:model UserReward
type UserReward struct {
	UUIDBase
	UserID     string    `gorm:"index;type:varchar(36)" json:"user_id"`
	RewardID   string    `gorm:"index;type:varchar(36)" json:"reward_id"`
	RedeemedAt time.Time `json:"redeemed_at"`
}

func (UserReward) TableName() string {
	return "user_rewards"
}
