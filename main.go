package main

import (
	"log"

	"github.com/techagentng/fundhub/config"
	"github.com/techagentng/fundhub/db"
	"github.com/techagentng/fundhub/mailingservices"
	"github.com/techagentng/fundhub/server"
	"github.com/techagentng/fundhub/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize Mailgun client
	mailgunClient := &mailingservices.Mailgun{}
	mailgunClient.Init(conf)

	gormDB := db.GetDB(conf)
	// Seed demo interns, donations and rewards
	if err := db.SeedDemoData(gormDB.DB); err != nil {
		log.Fatalf("error seeding demo data: %v", err)
	}

	internRepo := db.NewInternRepo(gormDB)
	donationRepo := db.NewDonationRepo(gormDB)
	rewardRepo := db.NewRewardRepo(gormDB)

	authService := services.NewAuthService(internRepo, conf)
	leaderboardService := services.NewLeaderboardService(internRepo, conf)
	dashboardService := services.NewDashboardService(internRepo, leaderboardService, conf)
	donationService := services.NewDonationService(donationRepo, internRepo, conf)
	rewardService := services.NewRewardService(rewardRepo, conf)

	s := &server.Server{
		Mail:               mailgunClient,
		Config:             conf,
		InternRepository:   internRepo,
		DonationRepository: donationRepo,
		RewardRepository:   rewardRepo,
		AuthService:        authService,
		LeaderboardService: leaderboardService,
		DashboardService:   dashboardService,
		DonationService:    donationService,
		RewardService:      rewardService,
	}

	s.Start()
}
