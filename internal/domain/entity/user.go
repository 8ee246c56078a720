package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table. The role-specific
// data lives in blood_donations / blood_requests rows keyed by user.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role      Role            `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Donations []BloodDonation `gorm:"foreignKey:UserID" json:"donations,omitempty"`
	Requests  []BloodRequest  `gorm:"foreignKey:UserID" json:"requests,omitempty"`
}

func (User) TableName() string {
	return "users"
}
