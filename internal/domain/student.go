package domain

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// SubjectMark is one entry of a student's test-marks list. Marks stays a
// string because the form accepts free text ("82", "A+", "absent").
type SubjectMark struct {
	Subject string `json:"subject"` // Subject name
	Marks   string `json:"marks"`   // Marks obtained
}

// StudentProfile Model
type StudentProfile struct {
	Username       string         `gorm:"primaryKey" json:"username"`               // References users.username
	Name           string         `gorm:"not null" json:"name"`                     // Student name
	RollNo         string         `gorm:"not null" json:"roll_no"`                  // Roll number
	Phone          string         `gorm:"check:phone = '' OR length(phone) = 10" json:"phone"` // Phone number, exactly 10 chars when set
	TestMarks      datatypes.JSON `gorm:"not null" json:"test_marks"`               // JSON array of SubjectMark
	Certifications string         `json:"certifications"`                           // Certifications free text
	Projects       string         `json:"projects"`                                 // Projects free text
	AcademicIssues string         `json:"academic_issues"`                          // Academic issues free text
}

// Marks decodes the stored test-marks column. A missing or malformed column
// yields an empty list rather than an error leaking into page rendering.
func (p *StudentProfile) Marks() []SubjectMark {
	var marks []SubjectMark
	if len(p.TestMarks) == 0 {
		return marks
	}
	if err := json.Unmarshal(p.TestMarks, &marks); err != nil {
		return nil
	}
	return marks
}

// SetMarks encodes the test-marks list into the JSON column.
func (p *StudentProfile) SetMarks(marks []SubjectMark) error {
	if marks == nil {
		marks = []SubjectMark{}
	}
	b, err := json.Marshal(marks)
	if err != nil {
		return err
	}
	p.TestMarks = datatypes.JSON(b)
	return nil
}
