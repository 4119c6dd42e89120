package services

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/techagentng/fundhub/config"
	"github.com/techagentng/fundhub/db"
	apiError "github.com/techagentng/fundhub/errors"
	"github.com/techagentng/fundhub/models"
	"gorm.io/gorm"
)

type DonationService interface {
	RecordDonation(request *models.DonationRequest) (*models.Donation, *apiError.Error)
	GetRecentDonations(internID uuid.UUID, limit int) ([]models.Donation, error)
}

type donationService struct {
	Config       *config.Config
	donationRepo db.DonationRepository
	internRepo   db.InternRepository
}

func NewDonationService(donationRepo db.DonationRepository, internRepo db.InternRepository, conf *config.Config) DonationService {
	return &donationService{
		Config:       conf,
		donationRepo: donationRepo,
		internRepo:   internRepo,
	}
}

// RecordDonation resolves the referral code to its intern and books the
// donation against them. Reward unlocked flags are not re-evaluated here;
// they are set at seed time only.
func (s *donationService) RecordDonation(request *models.DonationRequest) (*models.Donation, *apiError.Error) {
	if err := request.Sanitize(); err != nil {
		return nil, apiError.ErrBadRequest
	}
	if request.Amount <= 0 {
		return nil, apiError.New("donation amount must be positive", http.StatusBadRequest)
	}

	intern, err := s.internRepo.FindInternByReferralCode(request.ReferralCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("referral code not found", http.StatusNotFound)
		}
		log.Printf("Error finding intern by referral code: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	donorName := request.DonorName
	if donorName == "" {
		donorName = models.AnonymousDonor
	}

	donation := &models.Donation{
		Amount:    request.Amount,
		DonorName: donorName,
	}
	saved, err := s.donationRepo.CreateDonation(intern.ID, donation)
	if err != nil {
		log.Printf("Error saving donation for %s: %v", intern.ReferralCode, err)
		return nil, apiError.ErrInternalServerError
	}

	return saved, nil
}

func (s *donationService) GetRecentDonations(internID uuid.UUID, limit int) ([]models.Donation, error) {
	donations, err := s.donationRepo.GetRecentDonationsByInternID(internID, limit)
	if err != nil {
		return nil, fmt.Errorf("error getting recent donations: %w", err)
	}
	return donations, nil
}
