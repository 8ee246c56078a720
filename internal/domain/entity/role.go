package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDDonor    = 1
	RoleIDHospital = 2
)

// Role name constants
const (
	RoleDonor    = "donor"
	RoleHospital = "hospital"
)

// RoleNameFor maps a role ID to its name. Unknown IDs map to "".
func RoleNameFor(roleID int) string {
	switch roleID {
	case RoleIDDonor:
		return RoleDonor
	case RoleIDHospital:
		return RoleHospital
	default:
		return ""
	}
}

// RoleIDFor maps a role name to its ID. The second return reports whether
// the name is a known role.
func RoleIDFor(role string) (int, bool) {
	switch role {
	case RoleDonor:
		return RoleIDDonor, true
	case RoleHospital:
		return RoleIDHospital, true
	default:
		return 0, false
	}
}
