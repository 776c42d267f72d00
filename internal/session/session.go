package session

import (
	"errors"

	"mentor_mentee_app/internal/domain"
)

// Page names. Home is the initial page of every session.
const (
	PageHome    = "Home"
	PageSignUp  = "SignUp"
	PageLogin   = "Login"
	PageStudent = "Student"
	PageMentor  = "Mentor"
)

// ErrInvalidTransition is returned when a page change is not permitted from
// the current page.
var ErrInvalidTransition = errors.New("invalid page transition")

// ErrBadSubjectIndex is returned when a subject removal index is out of range.
var ErrBadSubjectIndex = errors.New("subject index out of range")

// Session is the per-connection page state. It is transient: held in the
// session store, never in the database, and reset by Logout.
type Session struct {
	Page            string               `json:"page"`             // Current page
	LoggedIn        bool                 `json:"logged_in"`        // Whether an identity is attached
	Username        string               `json:"username"`         // Authenticated username
	Role            string               `json:"role"`             // Authenticated role
	SelectedStudent string               `json:"selected_student"` // Mentor's current selection, empty when none
	Subjects        []domain.SubjectMark `json:"subjects"`         // In-progress test-marks form state
}

// New returns a fresh session on the Home page with one blank subject row.
func New() *Session {
	return &Session{Page: PageHome, Subjects: blankSubjects()}
}

func blankSubjects() []domain.SubjectMark {
	return []domain.SubjectMark{{}}
}

// navigable transitions driven by plain page buttons. Student and Mentor are
// only reachable through LoginAs, and only left through Logout.
var transitions = map[string][]string{
	PageHome:   {PageSignUp, PageLogin},
	PageSignUp: {PageHome},
	PageLogin:  {PageHome},
}

// GoTo moves the session to another page when the transition is allowed.
func (s *Session) GoTo(page string) error {
	for _, next := range transitions[s.Page] {
		if next == page {
			s.Page = page
			return nil
		}
	}
	return ErrInvalidTransition
}

// LoginAs attaches an authenticated identity and routes to the role's page.
// Only valid from the Login page.
func (s *Session) LoginAs(username, role string) error {
	if s.Page != PageLogin {
		return ErrInvalidTransition
	}
	s.LoggedIn = true
	s.Username = username
	s.Role = role
	switch role {
	case domain.RoleStudent:
		s.Page = PageStudent
	case domain.RoleMentor:
		s.Page = PageMentor
	default:
		s.LoggedIn = false
		s.Username = ""
		s.Role = ""
		return ErrInvalidTransition
	}
	return nil
}

// Logout clears identity, selection and form state and returns to Home.
func (s *Session) Logout() {
	s.Page = PageHome
	s.LoggedIn = false
	s.Username = ""
	s.Role = ""
	s.SelectedStudent = ""
	s.Subjects = blankSubjects()
}

// AddSubject appends a blank subject/marks row to the form state.
func (s *Session) AddSubject() {
	s.Subjects = append(s.Subjects, domain.SubjectMark{})
}

// RemoveSubject deletes the row at index i, shifting later rows up.
func (s *Session) RemoveSubject(i int) error {
	if i < 0 || i >= len(s.Subjects) {
		return ErrBadSubjectIndex
	}
	s.Subjects = append(s.Subjects[:i], s.Subjects[i+1:]...)
	return nil
}

// SetSubjects replaces the form state wholesale.
func (s *Session) SetSubjects(marks []domain.SubjectMark) {
	if marks == nil {
		marks = []domain.SubjectMark{}
	}
	s.Subjects = marks
}

// SelectStudent records the mentor's current selection. The selection
// persists across renders until Logout.
func (s *Session) SelectStudent(username string) error {
	if s.Page != PageMentor {
		return ErrInvalidTransition
	}
	s.SelectedStudent = username
	return nil
}
