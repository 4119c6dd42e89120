package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/techagentng/fundhub/models"
	"gorm.io/gorm"
)

var (
	errEmailInUse        = errors.New("email already in use")
	errReferralCodeInUse = errors.New("referral code already in use")
)

// mockInternRepo satisfies db.InternRepository with in-memory records; no
// database needed for service tests.
type mockInternRepo struct {
	interns   []models.Intern
	donations map[uuid.UUID][]models.Donation
	rewards   map[uuid.UUID][]models.Reward
	failWith  error
}

func (m *mockInternRepo) CreateIntern(intern *models.Intern) (*models.Intern, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	intern.ID = uuid.New()
	intern.CreatedAt = time.Now().Add(time.Duration(len(m.interns)) * time.Second)
	m.interns = append(m.interns, *intern)
	return intern, nil
}

func (m *mockInternRepo) FindInternByID(id uuid.UUID) (*models.Intern, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for i := range m.interns {
		if m.interns[i].ID == id {
			return &m.interns[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInternRepo) FindInternByEmail(email string) (*models.Intern, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for i := range m.interns {
		if m.interns[i].Email == email {
			return &m.interns[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInternRepo) FindInternByReferralCode(code string) (*models.Intern, error) {
	for i := range m.interns {
		if m.interns[i].ReferralCode == code {
			return &m.interns[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInternRepo) IsEmailExist(email string) error {
	for i := range m.interns {
		if m.interns[i].Email == email {
			return errEmailInUse
		}
	}
	return nil
}

func (m *mockInternRepo) IsReferralCodeExist(code string) error {
	for i := range m.interns {
		if m.interns[i].ReferralCode == code {
			return errReferralCodeInUse
		}
	}
	return nil
}

func (m *mockInternRepo) GetAllInterns() ([]models.Intern, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make([]models.Intern, len(m.interns))
	copy(out, m.interns)
	return out, nil
}

func (m *mockInternRepo) GetDashboardData(internID uuid.UUID) (*models.DashboardResponse, error) {
	intern, err := m.FindInternByID(internID)
	if err != nil {
		return nil, err
	}
	donations := m.donations[internID]
	if len(donations) > 5 {
		donations = donations[:5]
	}
	return &models.DashboardResponse{
		Intern:          *intern,
		RecentDonations: donations,
		Rewards:         m.rewards[internID],
	}, nil
}

type mockDonationRepo struct {
	created  []models.Donation
	byIntern map[uuid.UUID][]models.Donation
	failWith error
}

func (m *mockDonationRepo) CreateDonation(internID uuid.UUID, donation *models.Donation) (*models.Donation, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	donation.ID = uuid.New()
	donation.InternID = internID
	donation.CreatedAt = time.Now()
	m.created = append(m.created, *donation)
	return donation, nil
}

func (m *mockDonationRepo) GetRecentDonationsByInternID(internID uuid.UUID, limit int) ([]models.Donation, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	donations := m.byIntern[internID]
	if len(donations) > limit {
		donations = donations[:limit]
	}
	return donations, nil
}

type mockRewardRepo struct {
	byIntern map[uuid.UUID][]models.Reward
	failWith error
}

func (m *mockRewardRepo) GetRewardsByInternID(internID uuid.UUID) ([]models.Reward, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.byIntern[internID], nil
}

func (m *mockRewardRepo) GetAllRewards() ([]models.Reward, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var all []models.Reward
	for _, rewards := range m.byIntern {
		all = append(all, rewards...)
	}
	return all, nil
}
