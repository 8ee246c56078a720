package entity

import (
	"time"

	"github.com/google/uuid"
)

// BloodRequest is one standing blood request submitted by a hospital
// account. Each row is one request event, not a unique hospital.
type BloodRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Email      string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Address    string    `gorm:"type:text;not null" json:"address"`
	BloodGroup string    `gorm:"column:blood_group;type:varchar(3);not null;index" json:"blood_group"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Urgency    string    `gorm:"type:varchar(10);not null;index" json:"urgency"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (BloodRequest) TableName() string {
	return "blood_requests"
}
