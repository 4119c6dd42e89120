package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/techagentng/fundhub/models"
	"gorm.io/gorm"
)

type InternRepository interface {
	CreateIntern(intern *models.Intern) (*models.Intern, error)
	FindInternByID(id uuid.UUID) (*models.Intern, error)
	FindInternByEmail(email string) (*models.Intern, error)
	FindInternByReferralCode(code string) (*models.Intern, error)
	IsEmailExist(email string) error
	IsReferralCodeExist(code string) error
	GetAllInterns() ([]models.Intern, error)
	GetDashboardData(internID uuid.UUID) (*models.DashboardResponse, error)
}

type internRepo struct {
	DB *gorm.DB
}

func NewInternRepo(db *GormDB) InternRepository {
	return &internRepo{db.DB}
}

func (r *internRepo) CreateIntern(intern *models.Intern) (*models.Intern, error) {
	if err := r.DB.Create(intern).Error; err != nil {
		return nil, errors.Wrap(err, "gorm.create error")
	}
	return intern, nil
}

func (r *internRepo) FindInternByID(id uuid.UUID) (*models.Intern, error) {
	var intern models.Intern
	if err := r.DB.Where("id = ?", id).First(&intern).Error; err != nil {
		return nil, err
	}
	return &intern, nil
}

func (r *internRepo) FindInternByEmail(email string) (*models.Intern, error) {
	var intern models.Intern
	if err := r.DB.Where("email = ?", email).First(&intern).Error; err != nil {
		return nil, err
	}
	return &intern, nil
}

func (r *internRepo) FindInternByReferralCode(code string) (*models.Intern, error) {
	var intern models.Intern
	if err := r.DB.Where("referral_code = ?", code).First(&intern).Error; err != nil {
		return nil, err
	}
	return &intern, nil
}

func (r *internRepo) IsEmailExist(email string) error {
	var count int64
	err := r.DB.Model(&models.Intern{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "gorm.count error")
	}
	if count > 0 {
		return fmt.Errorf("email already in use")
	}
	return nil
}

func (r *internRepo) IsReferralCodeExist(code string) error {
	var count int64
	err := r.DB.Model(&models.Intern{}).Where("referral_code = ?", code).Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "gorm.count error")
	}
	if count > 0 {
		return fmt.Errorf("referral code already in use")
	}
	return nil
}

// GetAllInterns returns the full intern set ordered by total raised
// descending, insertion order breaking ties. Rank assignment happens in the
// leaderboard service on top of this ordering.
func (r *internRepo) GetAllInterns() ([]models.Intern, error) {
	var interns []models.Intern
	err := r.DB.Order("total_raised DESC, created_at ASC").Find(&interns).Error
	if err != nil {
		return nil, errors.Wrap(err, "gorm.find error")
	}
	return interns, nil
}

// GetDashboardData bundles the intern record, its five most recent
// donations and its full reward set. The three reads run in one read-only
// transaction so the bundle is a consistent snapshot.
func (r *internRepo) GetDashboardData(internID uuid.UUID) (*models.DashboardResponse, error) {
	var data models.DashboardResponse
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", internID).First(&data.Intern).Error; err != nil {
			return err
		}
		if err := tx.Where("intern_id = ?", internID).
			Order("created_at DESC").
			Limit(5).
			Find(&data.RecentDonations).Error; err != nil {
			return err
		}
		return tx.Where("intern_id = ?", internID).
			Order("threshold DESC").
			Find(&data.Rewards).Error
	}, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	return &data, nil
}
