package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Matchup is a snapshot of couple compatibility computed from both
// partners' latest assessments.
type Matchup struct {
	gorm.Model
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RelationshipID uuid.UUID      `gorm:"index;not null;column:relationship_id" json:"relationship_id"`
	Relationship   *Relationship  `gorm:"constraint:OnDelete:CASCADE;foreignKey:RelationshipID;references:ID" json:"-"`
	Score          int            `gorm:"not null;column:score" json:"score"`
	Alignments     datatypes.JSON `gorm:"column:alignments" json:"alignments"`
	Details        datatypes.JSON `gorm:"column:details" json:"details"`
	GeneratedAt    time.Time      `gorm:"index;not null;column:generated_at" json:"generated_at"`
	CreatedAt      time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Matchup) TableName() string {
	return "matchup"
}
