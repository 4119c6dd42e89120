package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/techagentng/fundhub/config"
	"github.com/techagentng/fundhub/db"
	"github.com/techagentng/fundhub/models"
)

type RewardService interface {
	GetInternRewards(internID uuid.UUID) ([]models.Reward, error)
	GetAllRewards() ([]models.Reward, error)
}

type rewardService struct {
	Config     *config.Config
	rewardRepo db.RewardRepository
}

func NewRewardService(rewardRepo db.RewardRepository, conf *config.Config) RewardService {
	return &rewardService{
		Config:     conf,
		rewardRepo: rewardRepo,
	}
}

func (s *rewardService) GetInternRewards(internID uuid.UUID) ([]models.Reward, error) {
	rewards, err := s.rewardRepo.GetRewardsByInternID(internID)
	if err != nil {
		return nil, fmt.Errorf("error getting rewards for intern: %w", err)
	}
	return rewards, nil
}

func (s *rewardService) GetAllRewards() ([]models.Reward, error) {
	rewards, err := s.rewardRepo.GetAllRewards()
	if err != nil {
		return nil, fmt.Errorf("error getting all rewards: %w", err)
	}
	return rewards, nil
}
