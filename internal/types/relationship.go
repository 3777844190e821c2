package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Relationship links two partners. User2ID stays nil until the partner
// redeems the invite code.
type Relationship struct {
	gorm.Model
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	User1ID    uuid.UUID  `gorm:"index;not null;column:user1_id" json:"user1_id"`
	User2ID    *uuid.UUID `gorm:"index;column:user2_id" json:"user2_id"`
	User1      *User      `gorm:"foreignKey:User1ID;references:ID" json:"-"`
	User2      *User      `gorm:"foreignKey:User2ID;references:ID" json:"-"`
	InviteCode string     `gorm:"uniqueIndex;not null;column:invite_code" json:"invite_code"`
	CreatedAt  time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (Relationship) TableName() string {
	return "relationship"
}
