package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Strategy is one generated week of a plan cycle. Six rows share a
// CycleNumber; exactly one cycle is active per relationship.
type Strategy struct {
	gorm.Model
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RelationshipID  uuid.UUID      `gorm:"index;not null;column:relationship_id" json:"relationship_id"`
	Relationship    *Relationship  `gorm:"constraint:OnDelete:CASCADE;foreignKey:RelationshipID;references:ID" json:"-"`
	CycleNumber     int            `gorm:"not null;default:1;column:cycle_number" json:"cycle_number"`
	Week            int            `gorm:"not null;column:week" json:"week"`
	Mode            string         `gorm:"not null;default:'solo';column:mode" json:"mode"`
	Introduction    datatypes.JSON `gorm:"column:introduction" json:"introduction"`
	DailyActivities datatypes.JSON `gorm:"column:daily_activities" json:"daily_activities"`
	WeeklyGoals     datatypes.JSON `gorm:"column:weekly_goals" json:"weekly_goals"`
	Insights        datatypes.JSON `gorm:"column:insights" json:"insights"`
	Progress        int            `gorm:"not null;default:0;column:progress" json:"progress"`
	IsActive        bool           `gorm:"index;not null;default:true;column:is_active" json:"is_active"`
	StartDate       time.Time      `gorm:"column:start_date" json:"start_date"`
	EndDate         time.Time      `gorm:"column:end_date" json:"end_date"`
	CreatedAt       time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Strategy) TableName() string {
	return "strategy"
}
