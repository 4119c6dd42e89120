package models

import (
	"github.com/google/uuid"
	"github.com/leebenson/conform"
)

// AnonymousDonor is recorded when a donor gives no name.
const AnonymousDonor = "Anonymous"

// Donation is a single contribution made through an intern's referral
// link. Donations are immutable once created.
type Donation struct {
	Model
	InternID  uuid.UUID `json:"internId" gorm:"type:uuid;not null;index"`
	Intern    Intern    `json:"-" gorm:"foreignKey:InternID"`
	Amount    int       `json:"amount" gorm:"not null"`
	DonorName string    `json:"donorName"`
}

// DonationRequest records a donation against a referral code.
type DonationRequest struct {
	ReferralCode string `json:"referralCode" binding:"required" conform:"trim"`
	Amount       int    `json:"amount" binding:"required,gt=0"`
	DonorName    string `json:"donorName" conform:"trim"`
}

func (r *DonationRequest) Sanitize() error {
	return conform.Strings(r)
}

type DonationResponse struct {
	Success  bool     `json:"success"`
	Donation Donation `json:"donation"`
}
