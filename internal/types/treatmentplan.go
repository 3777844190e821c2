package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TreatmentPlan persists a composed module sequence. Plan holds the full
// schedule document as produced by the sequencer.
type TreatmentPlan struct {
	gorm.Model
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TherapistID uuid.UUID      `gorm:"index;not null;column:therapist_id" json:"therapist_id"`
	CoupleID    uuid.UUID      `gorm:"index;not null;column:couple_id" json:"couple_id"`
	Name        string         `gorm:"not null;column:name" json:"name"`
	Status      string         `gorm:"not null;default:'active';column:status" json:"status"`
	Plan        datatypes.JSON `gorm:"not null;column:plan" json:"plan"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (TreatmentPlan) TableName() string {
	return "treatment_plan"
}
