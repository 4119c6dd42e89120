package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techagentng/fundhub/config"
	"github.com/techagentng/fundhub/models"
)

func seedInterns() []models.Intern {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	names := []struct {
		name  string
		code  string
		total int
		count int
	}{
		{"Emily Rodriguez", "emily2025", 22500, 67},
		{"Mike Chen", "mike2025", 18200, 54},
		{"Sarah Johnson", "sarah2025", 15750, 42},
		{"Alex Kumar", "alex2025", 14300, 38},
		{"Jessica Park", "jessica2025", 12950, 31},
	}
	interns := make([]models.Intern, 0, len(names))
	for i, n := range names {
		interns = append(interns, models.Intern{
			Model:          models.Model{ID: uuid.New(), CreatedAt: base.Add(time.Duration(i) * time.Minute)},
			Name:           n.name,
			Email:          n.code + "@example.com",
			ReferralCode:   n.code,
			TotalRaised:    n.total,
			DonationsCount: n.count,
		})
	}
	return interns
}

func TestGetLeaderboard_SeededDemoData(t *testing.T) {
	repo := &mockInternRepo{interns: seedInterns()}
	svc := NewLeaderboardService(repo, &config.Config{})

	ranked, err := svc.GetLeaderboard()
	require.NoError(t, err)
	require.Len(t, ranked, 5)

	wantTotals := []int{22500, 18200, 15750, 14300, 12950}
	for i, entry := range ranked {
		assert.Equal(t, i+1, entry.Rank)
		assert.Equal(t, wantTotals[i], entry.TotalRaised)
	}
	assert.Equal(t, "Sarah Johnson", ranked[2].Name)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestGetLeaderboard_RankIsPermutation(t *testing.T) {
	interns := seedInterns()
	// shuffle-ish: reverse so the service cannot rely on input order
	for i, j := 0, len(interns)-1; i < j; i, j = i+1, j-1 {
		interns[i], interns[j] = interns[j], interns[i]
	}
	repo := &mockInternRepo{interns: interns}
	svc := NewLeaderboardService(repo, &config.Config{})

	ranked, err := svc.GetLeaderboard()
	require.NoError(t, err)

	seen := make(map[int]bool)
	prevTotal := int(^uint(0) >> 1)
	for _, entry := range ranked {
		assert.False(t, seen[entry.Rank], "duplicate rank %d", entry.Rank)
		seen[entry.Rank] = true
		assert.GreaterOrEqual(t, entry.Rank, 1)
		assert.LessOrEqual(t, entry.Rank, len(ranked))
		assert.LessOrEqual(t, entry.TotalRaised, prevTotal, "totals must be non-increasing")
		prevTotal = entry.TotalRaised
	}
}

func TestGetLeaderboard_TiesBrokenByInsertionOrder(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	first := models.Intern{Model: models.Model{ID: uuid.New(), CreatedAt: base}, Name: "First", Email: "first@example.com", ReferralCode: "first", TotalRaised: 1000}
	second := models.Intern{Model: models.Model{ID: uuid.New(), CreatedAt: base.Add(time.Hour)}, Name: "Second", Email: "second@example.com", ReferralCode: "second", TotalRaised: 1000}

	repo := &mockInternRepo{interns: []models.Intern{second, first}}
	svc := NewLeaderboardService(repo, &config.Config{})

	ranked, err := svc.GetLeaderboard()
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	// equal totals do not share a rank; the earlier signup wins
	assert.Equal(t, "First", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "Second", ranked[1].Name)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestGetLeaderboard_StableAcrossCalls(t *testing.T) {
	repo := &mockInternRepo{interns: seedInterns()}
	svc := NewLeaderboardService(repo, &config.Config{})

	first, err := svc.GetLeaderboard()
	require.NoError(t, err)
	second, err := svc.GetLeaderboard()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetInternRank(t *testing.T) {
	interns := seedInterns()
	repo := &mockInternRepo{interns: interns}
	svc := NewLeaderboardService(repo, &config.Config{})

	var sarah models.Intern
	for _, i := range interns {
		if i.Name == "Sarah Johnson" {
			sarah = i
		}
	}
	rank, err := svc.GetInternRank(sarah.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, rank)

	rank, err = svc.GetInternRank(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, rank, "unknown interns are off the board")
}

func TestGetLeaderboard_EmptySet(t *testing.T) {
	repo := &mockInternRepo{}
	svc := NewLeaderboardService(repo, &config.Config{})

	ranked, err := svc.GetLeaderboard()
	require.NoError(t, err)
	assert.Empty(t, ranked)
}
