package domain

// Feedback Model. Append-only: rows are only removed when the student they
// reference is removed.
type Feedback struct {
	ID              uint   `gorm:"primaryKey" json:"id"`                       // Primary key
	MentorUsername  string `gorm:"not null;index" json:"mentor_username"`      // Authoring mentor, references users.username
	StudentUsername string `gorm:"not null;index" json:"student_username"`     // Target student, references users.username
	Feedback        string `gorm:"not null" json:"feedback"`                   // Feedback text
}
