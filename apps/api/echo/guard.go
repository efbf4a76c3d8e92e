package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/ratiba/core/user"
)

// RoleAny admits any authenticated user regardless of role.
const RoleAny = "any"

// Decision is the route guard's answer for a protected view.
type Decision int

const (
	// Render admits the request to the protected content.
	Render Decision = iota
	// RedirectLogin sends unauthenticated users to the login view.
	RedirectLogin
	// RedirectHome sends authenticated users with a mismatched role home.
	RedirectHome
	// Pending answers with a neutral placeholder while the session state
	// is unknown; no redirect is issued.
	Pending
)

// Decide is a pure function of (session state, allowed role).
func Decide(sess Session, allowedRole string) Decision {
	switch sess.State {
	case SessionUnknown:
		return Pending
	case SessionAnonymous:
		return RedirectLogin
	}

	switch allowedRole {
	case user.RoleAdmin:
		if !sess.User.IsAdmin() {
			return RedirectHome
		}
	case user.RoleStudent:
		if !sess.User.IsStudent() {
			return RedirectHome
		}
	}
	return Render
}

const contextSessionKey = "session"

// guard gates a route group on the session and allowed role. It has no
// side effects beyond the redirect it answers with.
func (s *server) guard(allowedRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess := s.sessions.Load(ctx)
			switch Decide(sess, allowedRole) {
			case Pending:
				return ctx.NoContent(http.StatusNoContent)
			case RedirectLogin:
				return ctx.Redirect(http.StatusFound, loginPath)
			case RedirectHome:
				return ctx.Redirect(http.StatusFound, homePath)
			}
			ctx.Set(contextSessionKey, sess)
			return next(ctx)
		}
	}
}

func getContextSession(ctx echo.Context) (Session, bool) {
	sess, ok := ctx.Get(contextSessionKey).(Session)
	return sess, ok
}
