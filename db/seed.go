package db

import (
	"log"

	"github.com/techagentng/fundhub/models"
	"gorm.io/gorm"
)

// SeedDemoData loads the demo intern cohort with Sarah's donations and
// rewards. It is a no-op once any intern exists.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Intern{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	interns := []models.Intern{
		{Name: "Emily Rodriguez", Email: "emily@example.com", ReferralCode: "emily2025", TotalRaised: 22500, DonationsCount: 67},
		{Name: "Mike Chen", Email: "mike@example.com", ReferralCode: "mike2025", TotalRaised: 18200, DonationsCount: 54},
		{Name: "Sarah Johnson", Email: "sarah@example.com", ReferralCode: "sarah2025", TotalRaised: 15750, DonationsCount: 42},
		{Name: "Alex Kumar", Email: "alex@example.com", ReferralCode: "alex2025", TotalRaised: 14300, DonationsCount: 38},
		{Name: "Jessica Park", Email: "jessica@example.com", ReferralCode: "jessica2025", TotalRaised: 12950, DonationsCount: 31},
	}

	for i := range interns {
		if err := db.Create(&interns[i]).Error; err != nil {
			log.Printf("failed to seed intern %s: %v", interns[i].Email, err)
			return err
		}
	}

	var sarah models.Intern
	if err := db.Where("email = ?", "sarah@example.com").First(&sarah).Error; err != nil {
		return err
	}

	donations := []models.Donation{
		{InternID: sarah.ID, Amount: 250, DonorName: "Anonymous Donor"},
		{InternID: sarah.ID, Amount: 500, DonorName: "John Smith"},
		{InternID: sarah.ID, Amount: 100, DonorName: "Anonymous Donor"},
	}
	for i := range donations {
		if err := db.Create(&donations[i]).Error; err != nil {
			return err
		}
	}

	rewards := []models.Reward{
		{InternID: sarah.ID, RewardType: models.RewardTypeMilestone, Title: "First Milestone", Description: "$10,000 raised", Threshold: 10000, Unlocked: 1},
		{InternID: sarah.ID, RewardType: models.RewardTypePerformance, Title: "Top Performer", Description: "Top 5 ranking", Threshold: 15000, Unlocked: 1},
		{InternID: sarah.ID, RewardType: models.RewardTypeAchievement, Title: "Champion", Description: "$25,000 raised", Threshold: 25000, Unlocked: 0},
	}
	for i := range rewards {
		if err := db.Create(&rewards[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("seeded %d interns with demo donations and rewards", len(interns))
	return nil
}
