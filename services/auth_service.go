package services

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/techagentng/fundhub/config"
	"github.com/techagentng/fundhub/db"
	apiError "github.com/techagentng/fundhub/errors"
	"github.com/techagentng/fundhub/models"
	"github.com/techagentng/fundhub/services/jwt"
	"gorm.io/gorm"
)

// AuthService interface
type AuthService interface {
	SignupIntern(request *models.SignupRequest) (*models.AuthResponse, error)
	LoginIntern(request *models.LoginRequest) (*models.AuthResponse, *apiError.Error)
	GetInternByEmail(email string) (*models.InternResponse, *apiError.Error)
	GetInternProfile(internID uuid.UUID) (*models.Intern, error)
}

// authService struct
type authService struct {
	Config     *config.Config
	internRepo db.InternRepository
}

// NewAuthService instantiate an authService
func NewAuthService(internRepo db.InternRepository, conf *config.Config) AuthService {
	return &authService{
		Config:     conf,
		internRepo: internRepo,
	}
}

func (a *authService) SignupIntern(request *models.SignupRequest) (*models.AuthResponse, error) {
	if request == nil {
		log.Println("SignupIntern error: request is nil")
		return nil, errors.New("signup request is nil")
	}

	if err := request.Sanitize(); err != nil {
		log.Printf("SignupIntern sanitize error: %v", err)
		return nil, apiError.ErrBadRequest
	}

	// Check if the email already exists
	if err := a.internRepo.IsEmailExist(request.Email); err != nil {
		log.Printf("SignupIntern error: %v", err)
		return nil, apiError.GetUniqueConstraintError(err)
	}

	// Check if the referral code already exists
	if err := a.internRepo.IsReferralCodeExist(request.ReferralCode); err != nil {
		log.Printf("SignupIntern error: %v", err)
		return nil, apiError.GetUniqueConstraintError(err)
	}

	intern := &models.Intern{
		Name:         request.Name,
		Email:        request.Email,
		ReferralCode: request.ReferralCode,
	}

	// A password is optional and stored hashed when present. It is never
	// verified at login and never leaves the server.
	if request.Password != "" {
		if err := models.ValidatePassword(request.Password); err != nil {
			return nil, apiError.New(err.Error(), http.StatusBadRequest)
		}
		if err := intern.HashPassword(request.Password); err != nil {
			log.Printf("SignupIntern error hashing password: %v", err)
			return nil, apiError.ErrInternalServerError
		}
	}

	created, err := a.internRepo.CreateIntern(intern)
	if err != nil {
		log.Printf("SignupIntern error creating intern: %v", err)
		return nil, apiError.GetUniqueConstraintError(err)
	}

	token, err := jwt.GenerateSessionToken(created.ID, created.Email, a.Config.JWTSecret)
	if err != nil {
		log.Printf("SignupIntern error generating session token: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.AuthResponse{
		Success: true,
		Token:   token,
		Intern:  created.PublicFields(),
	}, nil
}

// LoginIntern looks the intern up by email and issues a session token. No
// credential is checked; login is an identity lookup.
func (a *authService) LoginIntern(request *models.LoginRequest) (*models.AuthResponse, *apiError.Error) {
	if err := request.Sanitize(); err != nil {
		return nil, apiError.ErrBadRequest
	}

	foundIntern, err := a.internRepo.FindInternByEmail(request.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("intern not found", http.StatusNotFound)
		}
		log.Printf("Error finding intern by email: %v", err)
		return nil, apiError.New("unable to find intern", http.StatusInternalServerError)
	}

	token, err := jwt.GenerateSessionToken(foundIntern.ID, foundIntern.Email, a.Config.JWTSecret)
	if err != nil {
		log.Printf("Error generating session token for %s: %v", foundIntern.Email, err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.AuthResponse{
		Success: true,
		Token:   token,
		Intern:  foundIntern.PublicFields(),
	}, nil
}

func (a *authService) GetInternByEmail(email string) (*models.InternResponse, *apiError.Error) {
	foundIntern, err := a.internRepo.FindInternByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("intern not found", http.StatusNotFound)
		}
		log.Printf("Error finding intern by email: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	response := foundIntern.PublicFields()
	return &response, nil
}

func (a *authService) GetInternProfile(internID uuid.UUID) (*models.Intern, error) {
	intern, err := a.internRepo.FindInternByID(internID)
	if err != nil {
		return nil, err
	}
	return intern, nil
}
