package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assessment stores one completed questionnaire. Score is the computed
// payload, Result an optional secondary payload. Legacy mobile clients
// stored Score as a JSON string (sometimes doubly encoded), so both
// columns are loose jsonb rather than typed structs.
type Assessment struct {
	gorm.Model
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"index;not null;column:user_id" json:"user_id"`
	User        *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Type        string         `gorm:"index;not null;column:type" json:"type"`
	Score       datatypes.JSON `gorm:"column:score" json:"score"`
	Result      datatypes.JSON `gorm:"column:result" json:"result"`
	CompletedAt time.Time      `gorm:"index;not null;column:completed_at" json:"completed_at"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Assessment) TableName() string {
	return "assessment"
}
