package services

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/techagentng/fundhub/config"
	"github.com/techagentng/fundhub/db"
	apiError "github.com/techagentng/fundhub/errors"
	"github.com/techagentng/fundhub/models"
	"gorm.io/gorm"
)

type DashboardService interface {
	GetDashboard(internID uuid.UUID) (*models.DashboardResponse, *apiError.Error)
}

type dashboardService struct {
	Config             *config.Config
	internRepo         db.InternRepository
	leaderboardService LeaderboardService
}

func NewDashboardService(internRepo db.InternRepository, leaderboardService LeaderboardService, conf *config.Config) DashboardService {
	return &dashboardService{
		Config:             conf,
		internRepo:         internRepo,
		leaderboardService: leaderboardService,
	}
}

// GetDashboard composes the intern record, its five most recent donations,
// its reward set and its current leaderboard position. Recomputed in full on
// every call; there is no caching or incremental update.
func (s *dashboardService) GetDashboard(internID uuid.UUID) (*models.DashboardResponse, *apiError.Error) {
	data, err := s.internRepo.GetDashboardData(internID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("intern not found", http.StatusNotFound)
		}
		log.Printf("Error fetching dashboard data for %s: %v", internID, err)
		return nil, apiError.ErrInternalServerError
	}

	rank, err := s.leaderboardService.GetInternRank(internID)
	if err != nil {
		log.Printf("Error computing rank for %s: %v", internID, err)
		return nil, apiError.ErrInternalServerError
	}
	data.Rank = rank

	return data, nil
}
