package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/techagentng/fundhub/errors"
	"github.com/techagentng/fundhub/models"
	"github.com/techagentng/fundhub/server/response"
)

func (s *Server) handleRecordDonation() gin.HandlerFunc {
	return func(c *gin.Context) {
		var donationRequest models.DonationRequest
		if err := decode(c, &donationRequest); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		donation, apiErr := s.DonationService.RecordDonation(&donationRequest)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		c.JSON(http.StatusCreated, models.DonationResponse{
			Success:  true,
			Donation: *donation,
		})
	}
}

func (s *Server) handleGetInternDonations() gin.HandlerFunc {
	return func(c *gin.Context) {
		internID, err := uuid.Parse(c.Param("internId"))
		if err != nil {
			response.JSON(c, "", http.StatusNotFound, nil, errors.New("intern not found", http.StatusNotFound))
			return
		}

		donations, err := s.DonationService.GetRecentDonations(internID, 5)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		c.JSON(http.StatusOK, donations)
	}
}
