package models

import (
	"errors"
	"fmt"
	"time"

	goval "github.com/go-passwd/validator"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/leebenson/conform"
	"golang.org/x/crypto/bcrypt"
)

// Intern represents a fundraising participant soliciting donations
// through a personal referral link.
type Intern struct {
	Model
	Name           string `json:"name" binding:"required,min=2" conform:"trim"`
	Email          string `json:"email" gorm:"uniqueIndex;not null" binding:"required,email" conform:"trim,lower"`
	ReferralCode   string `json:"referralCode" gorm:"uniqueIndex;not null" binding:"required,min=3" conform:"trim"`
	TotalRaised    int    `json:"totalRaised" gorm:"not null;default:0"`
	DonationsCount int    `json:"donationsCount" gorm:"not null;default:0"`
	HashedPassword string `json:"-"`
}

// SignupRequest carries the signup form fields. A password may be supplied
// but is never required, verified, or echoed back; login is an identity
// lookup only.
type SignupRequest struct {
	Name            string `json:"name" binding:"required,min=2" conform:"trim"`
	Email           string `json:"email" binding:"required,email" conform:"trim,lower"`
	ReferralCode    string `json:"referralCode" binding:"required,min=3" conform:"trim"`
	Password        string `json:"password,omitempty" binding:"omitempty,min=6"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email" conform:"trim,lower"`
}

// InternResponse holds the public fields returned by the auth endpoints.
type InternResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ReferralCode string    `json:"referralCode"`
}

type AuthResponse struct {
	Success bool           `json:"success"`
	Token   string         `json:"token,omitempty"`
	Intern  InternResponse `json:"intern"`
}

// RankedIntern is a leaderboard row: an intern plus its dense 1-based rank
// when all interns are ordered by total raised descending.
type RankedIntern struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ReferralCode   string    `json:"referralCode"`
	TotalRaised    int       `json:"totalRaised"`
	DonationsCount int       `json:"donationsCount"`
	CreatedAt      time.Time `json:"createdAt"`
	Rank           int       `json:"rank"`
}

// DashboardResponse is the composite read backing the dashboard view.
type DashboardResponse struct {
	Intern          Intern     `json:"intern"`
	RecentDonations []Donation `json:"recentDonations"`
	Rewards         []Reward   `json:"rewards"`
	Rank            int        `json:"rank"`
}

// PublicFields strips the intern down to what the auth endpoints return.
func (i *Intern) PublicFields() InternResponse {
	return InternResponse{
		ID:           i.ID,
		Name:         i.Name,
		Email:        i.Email,
		ReferralCode: i.ReferralCode,
	}
}

func ValidatePassword(password string) error {
	passwordValidator := goval.New(goval.MinLength(6, errors.New("password cant be less than 6 characters")),
		goval.MaxLength(15, errors.New("password cant be more than 15 characters")))
	err := passwordValidator.Validate(password)
	return err
}

// Sanitize trims and normalizes the form fields per the conform tags.
func (r *SignupRequest) Sanitize() error {
	return conform.Strings(r)
}

func (r *LoginRequest) Sanitize() error {
	return conform.Strings(r)
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans) + "; ")
		errs = append(errs, translatedErr)
	}
	return errs
}

// HashPassword hashes and stores the supplied password on the intern.
func (i *Intern) HashPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	i.HashedPassword = string(hashed)
	return nil
}
