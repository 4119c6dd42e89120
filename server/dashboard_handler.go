package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/techagentng/fundhub/errors"
	"github.com/techagentng/fundhub/server/response"
)

func (s *Server) handleGetDashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		internID, err := uuid.Parse(c.Param("internId"))
		if err != nil {
			// An id that cannot exist is indistinguishable from an unknown one.
			response.JSON(c, "", http.StatusNotFound, nil, errors.New("intern not found", http.StatusNotFound))
			return
		}

		dashboard, apiErr := s.DashboardService.GetDashboard(internID)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		c.JSON(http.StatusOK, dashboard)
	}
}
