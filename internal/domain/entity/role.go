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
	RoleIDAdmin        = 1
	RoleIDDoctor       = 2
	RoleIDReceptionist = 3
)

// RoleNames constants
const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RoleReceptionist = "receptionist"
)

// Landing pages per role, used after login and email verification
const (
	HomePathAdmin        = "/admin/dashboard"
	HomePathDoctor       = "/doctor/appointments"
	HomePathReceptionist = "/receptionist/patients"
	HomePathDefault      = "/"
)

// RoleNameByID maps a role id to its name, or "" when unknown.
func RoleNameByID(roleID int) string {
	switch roleID {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDDoctor:
		return RoleDoctor
	case RoleIDReceptionist:
		return RoleReceptionist
	}
	return ""
}

// RoleIDByName is the inverse of RoleNameByID; 0 when unknown.
func RoleIDByName(name string) int {
	switch name {
	case RoleAdmin:
		return RoleIDAdmin
	case RoleDoctor:
		return RoleIDDoctor
	case RoleReceptionist:
		return RoleIDReceptionist
	}
	return 0
}

// HomePathForRole returns where a user of the role lands.
func HomePathForRole(roleID int) string {
	switch roleID {
	case RoleIDAdmin:
		return HomePathAdmin
	case RoleIDDoctor:
		return HomePathDoctor
	case RoleIDReceptionist:
		return HomePathReceptionist
	}
	return HomePathDefault
}
