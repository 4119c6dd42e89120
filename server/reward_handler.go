package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/techagentng/fundhub/errors"
	"github.com/techagentng/fundhub/server/response"
)

func (s *Server) handleGetInternRewards() gin.HandlerFunc {
	return func(c *gin.Context) {
		internID, err := uuid.Parse(c.Param("internId"))
		if err != nil {
			response.JSON(c, "", http.StatusNotFound, nil, errors.New("intern not found", http.StatusNotFound))
			return
		}

		rewards, err := s.RewardService.GetInternRewards(internID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rewards)
	}
}

func (s *Server) handleGetAllRewardsList() gin.HandlerFunc {
	return func(c *gin.Context) {
		rewards, err := s.RewardService.GetAllRewards()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rewards)
	}
}
