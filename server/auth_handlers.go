package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/fundhub/errors"
	"github.com/techagentng/fundhub/models"
	"github.com/techagentng/fundhub/server/response"
)

// decode binds the JSON body onto v, running the binding validators.
func decode(c *gin.Context, v interface{}) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return errors.New(err.Error(), http.StatusBadRequest)
	}
	return nil
}

func (s *Server) handleSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var signupRequest models.SignupRequest
		if err := decode(c, &signupRequest); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, err)
			return
		}

		authResponse, err := s.AuthService.SignupIntern(&signupRequest)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}

		// Fire the welcome mail without blocking the signup flow.
		if s.Mail != nil {
			go func(email string) {
				subject := "Welcome to FundHub!"
				if _, err := s.Mail.SendWelcomeMessage(email, subject); err != nil {
					log.Printf("Error sending welcome email: %v", err)
				}
			}(signupRequest.Email)
		}

		c.JSON(http.StatusCreated, authResponse)
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var loginRequest models.LoginRequest
		if err := decode(c, &loginRequest); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		authResponse, err := s.AuthService.LoginIntern(&loginRequest)
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		c.JSON(http.StatusOK, authResponse)
	}
}

func (s *Server) handleGetInternByEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		internResponse, err := s.AuthService.GetInternByEmail(email)
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		c.JSON(http.StatusOK, internResponse)
	}
}

func (s *Server) handleShowProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		internCtx, exists := c.Get("intern")
		if !exists {
			response.JSON(c, "", http.StatusInternalServerError, nil, errors.ErrInternalServerError)
			return
		}
		intern, ok := internCtx.(*models.Intern)
		if !ok {
			response.JSON(c, "", http.StatusInternalServerError, nil, errors.ErrInternalServerError)
			return
		}
		c.JSON(http.StatusOK, intern)
	}
}
