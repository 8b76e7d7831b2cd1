package service

import (
	"errors"
	"peerlearn_backend/internal/model"
	"peerlearn_backend/internal/repository"
	"peerlearn_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type RewardService struct {
	RewardRepo *repository.RewardRepository
	DB         *gorm.DB
}

func NewRewardService(rewardRepo *repository.RewardRepository, db *gorm.DB) *RewardService {
	return &RewardService{
		RewardRepo: rewardRepo,
		DB:         db,
	}
}

func (s *RewardService) ListRewards() ([]model.Reward, error) {
	return s.RewardRepo.FindAll()
}

func (s *RewardService) ListRedemptions(userID string) ([]model.UserReward, error) {
	return s.RewardRepo.FindReceiptsByUser(userID)
}

// Redeem debits the reward's cost from the user and records a receipt.
// The debit is a conditional update so a balance can never go negative;
// stock is decremented with a floor of zero but never blocks redemption.
func (s *RewardService) Redeem(userID, rewardID string) (*model.UserReward, error) {
	reward, err := s.RewardRepo.FindByID(rewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRewardNotFound
		}
		return nil, err
	}

	receipt := &model.UserReward{
		UserID:     userID,
		RewardID:   reward.ID,
		RedeemedAt: time.Now(),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		debit := tx.Model(&model.User{}).
			Where("id = ? AND coins >= ?", userID, reward.CoinCost).
			Update("coins", gorm.Expr("coins - ?", reward.CoinCost))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			return util.ErrInsufficientCoins
		}

		if err := tx.Model(&model.Reward{}).
			Where("id = ? AND stock > 0", reward.ID).
			Update("stock", gorm.Expr("stock - ?", 1)).Error; err != nil {
			return err
		}

		return tx.Create(receipt).Error
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}
