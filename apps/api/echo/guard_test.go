package echoapi

import (
	"testing"

	"github.com/trezcool/ratiba/core/user"
)

func TestDecide(t *testing.T) {
	unknown := Session{State: SessionUnknown}
	anonymous := Session{State: SessionAnonymous}
	admin := Session{State: SessionAuthenticated, User: SessionUser{ID: 1, Username: "admin", Role: user.RoleAdmin}}
	student := Session{State: SessionAuthenticated, User: SessionUser{ID: 2, Username: "student", Role: user.RoleStudent}}

	tests := []struct {
		name        string
		sess        Session
		allowedRole string
		want        Decision
	}{
		{name: "unknown session never redirects (any)", sess: unknown, allowedRole: RoleAny, want: Pending},
		{name: "unknown session never redirects (admin)", sess: unknown, allowedRole: user.RoleAdmin, want: Pending},
		{name: "anonymous goes to login (any)", sess: anonymous, allowedRole: RoleAny, want: RedirectLogin},
		{name: "anonymous goes to login (admin)", sess: anonymous, allowedRole: user.RoleAdmin, want: RedirectLogin},
		{name: "anonymous goes to login (student)", sess: anonymous, allowedRole: user.RoleStudent, want: RedirectLogin},
		{name: "admin renders admin view", sess: admin, allowedRole: user.RoleAdmin, want: Render},
		{name: "admin renders any view", sess: admin, allowedRole: RoleAny, want: Render},
		{name: "admin redirected home from student view", sess: admin, allowedRole: user.RoleStudent, want: RedirectHome},
		{name: "student renders student view", sess: student, allowedRole: user.RoleStudent, want: Render},
		{name: "student renders any view", sess: student, allowedRole: RoleAny, want: Render},
		{name: "student redirected home from admin view", sess: student, allowedRole: user.RoleAdmin, want: RedirectHome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.sess, tt.allowedRole); got != tt.want {
				t.Errorf("Decide() = %v; want %v", got, tt.want)
			}
		})
	}
}
