package session

import (
	"testing"

	"mentor_mentee_app/internal/domain"
)

func TestNew(t *testing.T) {
	sess := New()
	if sess.Page != PageHome {
		t.Errorf("Page = %q, want %q", sess.Page, PageHome)
	}
	if sess.LoggedIn {
		t.Error("new session is logged in")
	}
	if len(sess.Subjects) != 1 || sess.Subjects[0] != (domain.SubjectMark{}) {
		t.Errorf("Subjects = %v, want one blank row", sess.Subjects)
	}
}

func TestGoTo(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr bool
	}{
		{name: "home to signup", from: PageHome, to: PageSignUp},
		{name: "home to login", from: PageHome, to: PageLogin},
		{name: "signup back home", from: PageSignUp, to: PageHome},
		{name: "login back home", from: PageLogin, to: PageHome},
		{name: "home straight to student", from: PageHome, to: PageStudent, wantErr: true},
		{name: "home straight to mentor", from: PageHome, to: PageMentor, wantErr: true},
		{name: "signup to login", from: PageSignUp, to: PageLogin, wantErr: true},
		{name: "student cannot navigate", from: PageStudent, to: PageHome, wantErr: true},
		{name: "unknown page", from: PageHome, to: "Dashboard", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := New()
			sess.Page = tt.from
			err := sess.GoTo(tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GoTo(%q) error = %v, wantErr %v", tt.to, err, tt.wantErr)
			}
			if err == nil && sess.Page != tt.to {
				t.Errorf("Page = %q, want %q", sess.Page, tt.to)
			}
			if err != nil && sess.Page != tt.from {
				t.Errorf("failed transition moved page to %q", sess.Page)
			}
		})
	}
}

func TestLoginAs(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		role     string
		wantErr  bool
		wantPage string
	}{
		{name: "student login", from: PageLogin, role: domain.RoleStudent, wantPage: PageStudent},
		{name: "mentor login", from: PageLogin, role: domain.RoleMentor, wantPage: PageMentor},
		{name: "not on login page", from: PageHome, role: domain.RoleStudent, wantErr: true},
		{name: "unknown role", from: PageLogin, role: "Admin", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := New()
			sess.Page = tt.from
			err := sess.LoginAs("alice", tt.role)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoginAs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if sess.LoggedIn {
					t.Error("failed login left session logged in")
				}
				return
			}
			if !sess.LoggedIn || sess.Username != "alice" || sess.Role != tt.role {
				t.Errorf("identity = (%v, %q, %q)", sess.LoggedIn, sess.Username, sess.Role)
			}
			if sess.Page != tt.wantPage {
				t.Errorf("Page = %q, want %q", sess.Page, tt.wantPage)
			}
		})
	}
}

func TestLogoutResetsEverything(t *testing.T) {
	sess := New()
	sess.Page = PageLogin
	if err := sess.LoginAs("bob", domain.RoleMentor); err != nil {
		t.Fatalf("LoginAs() error = %v", err)
	}
	if err := sess.SelectStudent("alice"); err != nil {
		t.Fatalf("SelectStudent() error = %v", err)
	}
	sess.SetSubjects([]domain.SubjectMark{{Subject: "Maths", Marks: "90"}})

	sess.Logout()

	if sess.Page != PageHome || sess.LoggedIn || sess.Username != "" || sess.Role != "" || sess.SelectedStudent != "" {
		t.Errorf("session not reset: %+v", sess)
	}
	if len(sess.Subjects) != 1 || sess.Subjects[0] != (domain.SubjectMark{}) {
		t.Errorf("Subjects = %v, want one blank row", sess.Subjects)
	}
}

func TestAddRemoveSubject(t *testing.T) {
	sess := New()
	sess.SetSubjects([]domain.SubjectMark{
		{Subject: "Maths", Marks: "90"},
		{Subject: "Physics", Marks: "85"},
		{Subject: "Chemistry", Marks: "78"},
	})

	// Appending then removing the appended row restores the list
	sess.AddSubject()
	if len(sess.Subjects) != 4 {
		t.Fatalf("len = %d after add, want 4", len(sess.Subjects))
	}
	if err := sess.RemoveSubject(3); err != nil {
		t.Fatalf("RemoveSubject(3) error = %v", err)
	}
	if len(sess.Subjects) != 3 {
		t.Fatalf("len = %d after remove, want 3", len(sess.Subjects))
	}

	// Removing a middle row shifts later rows up
	if err := sess.RemoveSubject(1); err != nil {
		t.Fatalf("RemoveSubject(1) error = %v", err)
	}
	if sess.Subjects[0].Subject != "Maths" || sess.Subjects[1].Subject != "Chemistry" {
		t.Errorf("Subjects = %v after middle removal", sess.Subjects)
	}

	// Out-of-range indexes are rejected
	if err := sess.RemoveSubject(-1); err != ErrBadSubjectIndex {
		t.Errorf("RemoveSubject(-1) error = %v, want ErrBadSubjectIndex", err)
	}
	if err := sess.RemoveSubject(2); err != ErrBadSubjectIndex {
		t.Errorf("RemoveSubject(2) error = %v, want ErrBadSubjectIndex", err)
	}
}

func TestSelectStudentRequiresMentorPage(t *testing.T) {
	sess := New()
	if err := sess.SelectStudent("alice"); err != ErrInvalidTransition {
		t.Errorf("SelectStudent() on Home error = %v, want ErrInvalidTransition", err)
	}
	sess.Page = PageMentor
	if err := sess.SelectStudent("alice"); err != nil {
		t.Errorf("SelectStudent() on Mentor error = %v", err)
	}
	if sess.SelectedStudent != "alice" {
		t.Errorf("SelectedStudent = %q", sess.SelectedStudent)
	}
}
