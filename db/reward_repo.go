package db

import (
	"github.com/google/uuid"
	"github.com/techagentng/fundhub/models"
	"gorm.io/gorm"
)

type RewardRepository interface {
	GetRewardsByInternID(internID uuid.UUID) ([]models.Reward, error)
	GetAllRewards() ([]models.Reward, error)
}

type rewardRepo struct {
	DB *gorm.DB
}

func NewRewardRepo(db *GormDB) RewardRepository {
	return &rewardRepo{db.DB}
}

// GetRewardsByInternID returns the intern's rewards, highest threshold
// first, matching the dashboard ordering.
func (r *rewardRepo) GetRewardsByInternID(internID uuid.UUID) ([]models.Reward, error) {
	var rewards []models.Reward
	err := r.DB.Where("intern_id = ?", internID).
		Order("threshold DESC").
		Find(&rewards).Error
	if err != nil {
		return nil, err
	}
	return rewards, nil
}

func (r *rewardRepo) GetAllRewards() ([]models.Reward, error) {
	var rewards []models.Reward
	err := r.DB.Find(&rewards).Error
	if err != nil {
		return nil, err
	}
	return rewards, nil
}
