package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityEvent records completion evidence against a treatment plan:
// finished activities, new assessment scores, achieved milestones.
type ActivityEvent struct {
	gorm.Model
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"index;not null;column:user_id" json:"user_id"`
	PlanID      uuid.UUID      `gorm:"index;not null;column:plan_id" json:"plan_id"`
	ModuleID    string         `gorm:"column:module_id" json:"module_id"`
	ActivityID  string         `gorm:"column:activity_id" json:"activity_id"`
	Kind        string         `gorm:"index;not null;column:kind" json:"kind"`
	Payload     datatypes.JSON `gorm:"column:payload" json:"payload"`
	CompletedAt time.Time      `gorm:"index;not null;column:completed_at" json:"completed_at"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (ActivityEvent) TableName() string {
	return "activity_event"
}
