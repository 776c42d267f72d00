package domain

// Roles a user can sign up with. Stored verbatim and compared at login.
const (
	RoleMentor  = "Mentor"
	RoleStudent = "Student"
)

// User Model
type User struct {
	Username string `gorm:"primaryKey" json:"username"` // Unique username, primary key
	Password string `gorm:"not null" json:"-"`          // Hashed password, never serialized
	Role     string `gorm:"not null" json:"role"`       // Role: Mentor or Student
}
