package models

import "github.com/google/uuid"

// Reward types
const (
	RewardTypeMilestone   = "milestone"
	RewardTypePerformance = "performance"
	RewardTypeAchievement = "achievement"
)

// Reward represents a recognition tier for an intern. The unlocked flag is
// set when the reward is seeded, not recomputed from live totals.
type Reward struct {
	Model
	InternID    uuid.UUID `json:"internId" gorm:"type:uuid;not null;index"`
	Intern      Intern    `json:"-" gorm:"foreignKey:InternID"`
	RewardType  string    `json:"rewardType" gorm:"not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Threshold   int       `json:"threshold" gorm:"not null"`
	Unlocked    int       `json:"unlocked" gorm:"not null;default:0"`
}

// IsUnlocked reports whether the reward has been unlocked.
func (r *Reward) IsUnlocked() bool {
	return r.Unlocked == 1
}
