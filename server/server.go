package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/techagentng/fundhub/config"
	"github.com/techagentng/fundhub/db"
	"github.com/techagentng/fundhub/mailingservices"
	"github.com/techagentng/fundhub/services"
)

// Server holds the wired application: config, mail, repositories and
// services. Handlers hang off it as methods.
type Server struct {
	Config             *config.Config
	Mail               mailingservices.Mailer
	InternRepository   db.InternRepository
	DonationRepository db.DonationRepository
	RewardRepository   db.RewardRepository
	AuthService        services.AuthService
	LeaderboardService services.LeaderboardService
	DashboardService   services.DashboardService
	DonationService    services.DonationService
	RewardService      services.RewardService
}

// Start serves the API and blocks until an interrupt, then shuts down
// gracefully with a short deadline.
func (s *Server) Start() {
	r := s.setupRouter()

	port := s.Config.Port
	if port == 0 {
		port = 8080
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	go func() {
		log.Printf("listening on :%d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()

	gracefulShutdown(srv)
}

func gracefulShutdown(srv *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server exited")
}
