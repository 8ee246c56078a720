package entity

import (
	"time"

	"github.com/google/uuid"
)

// BloodDonation is one donation offer submitted by a donor. A donor may
// submit more than once; each row is a separate event, not a unique person.
type BloodDonation struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Email       string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	BloodGroup  string    `gorm:"column:blood_group;type:varchar(3);not null;index" json:"blood_group"`
	Age         int       `gorm:"not null" json:"age"`
	PhoneNumber string    `gorm:"type:varchar(20);not null" json:"phone_number"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (BloodDonation) TableName() string {
	return "blood_donations"
}
