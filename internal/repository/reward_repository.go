package repository

import (
	"peerlearn_backend/internal/model"

	"gorm.io/gorm"
)

type RewardRepository struct {
	DB *gorm.DB
}

func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{DB: db}
}

func (r *RewardRepository) FindAll() ([]model.Reward, error) {
	var rewards []model.Reward
	err := r.DB.Limit(100).Find(&rewards).Error
	return rewards, err
}

func (r *RewardRepository) FindByID(id string) (*model.Reward, error) {
	var reward model.Reward
	err := r.DB.Where("id = ?", id).First(&reward).Error
	return &reward, err
}

func (r *RewardRepository) CreateReceipt(receipt *model.UserReward) error {
	return r.DB.Create(receipt).Error
}

func (r *RewardRepository) FindReceiptsByUser(userID string) ([]model.UserReward, error) {
	var receipts []model.UserReward
	err := r.DB.Where("user_id = ?", userID).Order("redeemed_at DESC").Find(&receipts).Error
	return receipts, err
}
