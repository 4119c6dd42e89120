package db

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/techagentng/fundhub/models"
	"gorm.io/gorm"
)

type DonationRepository interface {
	CreateDonation(internID uuid.UUID, donation *models.Donation) (*models.Donation, error)
	GetRecentDonationsByInternID(internID uuid.UUID, limit int) ([]models.Donation, error)
}

type donationRepo struct {
	DB *gorm.DB
}

func NewDonationRepo(db *GormDB) DonationRepository {
	return &donationRepo{db.DB}
}

// CreateDonation inserts the donation and bumps the owning intern's
// running totals in the same transaction.
func (r *donationRepo) CreateDonation(internID uuid.UUID, donation *models.Donation) (*models.Donation, error) {
	donation.InternID = internID
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(donation).Error; err != nil {
			return err
		}
		return tx.Model(&models.Intern{}).
			Where("id = ?", internID).
			Updates(map[string]interface{}{
				"total_raised":    gorm.Expr("total_raised + ?", donation.Amount),
				"donations_count": gorm.Expr("donations_count + 1"),
			}).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "error saving donation")
	}
	return donation, nil
}

func (r *donationRepo) GetRecentDonationsByInternID(internID uuid.UUID, limit int) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.DB.Where("intern_id = ?", internID).
		Order("created_at DESC").
		Limit(limit).
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return donations, nil
}
