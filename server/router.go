package server

import (
	"fmt"
	"os"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		s.defineRoutes(r)
		return r
	}

	r := gin.New()

	// LoggerWithFormatter middleware will write the logs to gin.DefaultWriter
	// By default gin.DefaultWriter = os.Stdout
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	s.defineRoutes(r)

	return r
}

func (s *Server) defineRoutes(router *gin.Engine) {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{Rate: time.Minute, Limit: 20})
	limitAuthRate := limitRateForAuth(store)

	apirouter := router.Group("/api")
	apirouter.POST("/auth/signup", limitAuthRate, s.handleSignup())
	apirouter.POST("/auth/login", limitAuthRate, s.handleLogin())
	apirouter.GET("/dashboard/:internId", s.handleGetDashboard())
	apirouter.GET("/leaderboard", s.handleGetLeaderboard())
	apirouter.GET("/interns/by-email/:email", s.handleGetInternByEmail())
	apirouter.POST("/donations", s.handleRecordDonation())
	apirouter.GET("/interns/:internId/donations", s.handleGetInternDonations())
	apirouter.GET("/interns/:internId/rewards", s.handleGetInternRewards())
	apirouter.GET("/rewards", s.handleGetAllRewardsList())

	authorized := apirouter.Group("/")
	authorized.Use(s.Authorize())
	authorized.GET("/me", s.handleShowProfile())
}
