package services

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/techagentng/fundhub/config"
	"github.com/techagentng/fundhub/db"
	"github.com/techagentng/fundhub/models"
)

type LeaderboardService interface {
	GetLeaderboard() ([]models.RankedIntern, error)
	GetInternRank(internID uuid.UUID) (int, error)
}

type leaderboardService struct {
	Config     *config.Config
	internRepo db.InternRepository
}

func NewLeaderboardService(internRepo db.InternRepository, conf *config.Config) LeaderboardService {
	return &leaderboardService{
		Config:     conf,
		internRepo: internRepo,
	}
}

// GetLeaderboard returns every intern paired with a dense 1-based rank.
// The repository hands interns back ordered by total raised descending with
// insertion order breaking ties, so rank is just the row position. Equal
// totals do not share a rank number.
func (s *leaderboardService) GetLeaderboard() ([]models.RankedIntern, error) {
	interns, err := s.internRepo.GetAllInterns()
	if err != nil {
		return nil, fmt.Errorf("error getting interns for leaderboard: %w", err)
	}
	return RankInterns(interns), nil
}

// GetInternRank returns the intern's current position, or 0 when the intern
// is not on the board.
func (s *leaderboardService) GetInternRank(internID uuid.UUID) (int, error) {
	ranked, err := s.GetLeaderboard()
	if err != nil {
		return 0, err
	}
	for _, entry := range ranked {
		if entry.ID == internID {
			return entry.Rank, nil
		}
	}
	return 0, nil
}

// RankInterns orders interns by total raised descending, breaking ties by
// creation time, and assigns row-number ranks starting at 1. The sort is
// stable so repeated calls over unchanged input produce the same order.
func RankInterns(interns []models.Intern) []models.RankedIntern {
	ordered := make([]models.Intern, len(interns))
	copy(ordered, interns)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].TotalRaised != ordered[j].TotalRaised {
			return ordered[i].TotalRaised > ordered[j].TotalRaised
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	ranked := make([]models.RankedIntern, 0, len(ordered))
	for i, intern := range ordered {
		ranked = append(ranked, models.RankedIntern{
			ID:             intern.ID,
			Name:           intern.Name,
			Email:          intern.Email,
			ReferralCode:   intern.ReferralCode,
			TotalRaised:    intern.TotalRaised,
			DonationsCount: intern.DonationsCount,
			CreatedAt:      intern.CreatedAt,
			Rank:           i + 1,
		})
	}
	return ranked
}
