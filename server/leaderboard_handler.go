package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/fundhub/server/response"
)

func (s *Server) handleGetLeaderboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		leaderboard, err := s.LeaderboardService.GetLeaderboard()
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		c.JSON(http.StatusOK, leaderboard)
	}
}
