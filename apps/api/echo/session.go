package echoapi

import (
	"encoding/gob"
	"encoding/json"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/user"
)

// Persisted session keys. `adminAuthenticated` is written for compatibility
// with the legacy contract but is never consulted for authorization;
// decisions derive solely from the session role.
const (
	sessionUserKey  = "user"
	sessionAdminKey = "adminAuthenticated"
)

type SessionState int

const (
	// SessionUnknown means the stored session could not be decoded yet;
	// consumers must treat authentication as neither granted nor denied.
	SessionUnknown SessionState = iota
	SessionAnonymous
	SessionAuthenticated
)

type (
	// SessionUser is the sanitized identity persisted in the session;
	// it never carries credentials.
	SessionUser struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}

	Session struct {
		State SessionState
		User  SessionUser // zero value unless State == SessionAuthenticated
	}

	// Notification is a transient title+description message for the client
	// to display; emitted on every completed action.
	Notification struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	sessionManager struct {
		store *sessions.CookieStore
		name  string
	}
)

func (su SessionUser) IsAdmin() bool   { return su.Role == user.RoleAdmin }
func (su SessionUser) IsStudent() bool { return su.Role == user.RoleStudent }

func init() {
	gob.Register(Notification{})
}

func newSessionManager(conf *core.Config) *sessionManager {
	store := sessions.NewCookieStore([]byte(conf.SecretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(conf.SessionMaxAge.Seconds()),
		HttpOnly: true,
	}
	return &sessionManager{store: store, name: conf.SessionName}
}

// Load resolves the request's session state. A cookie that fails to decode
// yields SessionUnknown, never an error.
func (m *sessionManager) Load(ctx echo.Context) Session {
	sess, err := m.store.Get(ctx.Request(), m.name)
	if err != nil {
		return Session{State: SessionUnknown}
	}
	raw, ok := sess.Values[sessionUserKey].(string)
	if !ok || raw == "" {
		return Session{State: SessionAnonymous}
	}
	var su SessionUser
	if err := json.Unmarshal([]byte(raw), &su); err != nil {
		return Session{State: SessionUnknown}
	}
	return Session{State: SessionAuthenticated, User: su}
}

// Save persists the sanitized user under the `user` key and sets the
// admin compatibility flag only when the role is admin.
func (m *sessionManager) Save(ctx echo.Context, usr user.User) error {
	sess, _ := m.store.Get(ctx.Request(), m.name) // a decode error still yields a fresh session
	su := SessionUser{ID: usr.ID, Username: usr.Username, Role: usr.Role}
	data, err := json.Marshal(su)
	if err != nil {
		return errors.Wrap(err, "serializing session user")
	}
	sess.Values[sessionUserKey] = string(data)
	if usr.IsAdmin() {
		sess.Values[sessionAdminKey] = "true"
	} else {
		delete(sess.Values, sessionAdminKey)
	}
	return errors.Wrap(sess.Save(ctx.Request(), ctx.Response()), "saving session")
}

// Clear removes both persisted keys regardless of prior state; idempotent.
func (m *sessionManager) Clear(ctx echo.Context) error {
	sess, _ := m.store.Get(ctx.Request(), m.name)
	delete(sess.Values, sessionUserKey)
	delete(sess.Values, sessionAdminKey)
	return errors.Wrap(sess.Save(ctx.Request(), ctx.Response()), "clearing session")
}

// AddFlash queues a notification for the client; a failure to queue is
// logged by callers, never fatal to the action that emitted it.
func (m *sessionManager) AddFlash(ctx echo.Context, notif Notification) error {
	sess, _ := m.store.Get(ctx.Request(), m.name)
	sess.AddFlash(notif)
	return errors.Wrap(sess.Save(ctx.Request(), ctx.Response()), "saving flash")
}

// Flashes drains and returns the queued notifications.
func (m *sessionManager) Flashes(ctx echo.Context) ([]Notification, error) {
	sess, _ := m.store.Get(ctx.Request(), m.name)
	flashes := sess.Flashes()
	if len(flashes) > 0 {
		if err := sess.Save(ctx.Request(), ctx.Response()); err != nil {
			return nil, errors.Wrap(err, "draining flashes")
		}
	}
	notifs := make([]Notification, 0, len(flashes))
	for _, f := range flashes {
		if notif, ok := f.(Notification); ok {
			notifs = append(notifs, notif)
		}
	}
	return notifs, nil
}
