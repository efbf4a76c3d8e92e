package echoapi

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/user"
)

type authApi struct {
	svc      *user.Service
	sessions *sessionManager
	validate *validator.Validate
}

func registerAuthAPI(e *echo.Echo, sessions *sessionManager, svc *user.Service, validate *validator.Validate) {
	api := authApi{
		svc:      svc,
		sessions: sessions,
		validate: validate,
	}

	e.POST(loginPath, api.login)
	e.POST("/signup", api.signUp)
	e.POST("/logout", api.logout)
}

// Handlers

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.svc.Authenticate(data.Username, data.Password)
	if err != nil {
		if errors.Cause(err) == user.ErrAuthenticationFailed {
			api.notify(ctx, "Login failed", "Invalid username or password")
			return errAuthenticationFailed
		}
		return errors.Wrap(err, "authenticating")
	}

	if err := api.sessions.Save(ctx, usr); err != nil {
		return errors.Wrap(err, "saving session")
	}
	api.notify(ctx, "Login successful", fmt.Sprintf("Welcome back, %s!", usr.Username))

	return ctx.JSON(http.StatusOK, SessionUser{ID: usr.ID, Username: usr.Username, Role: usr.Role})
}

func (api *authApi) signUp(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.validate, api.svc); err != nil {
		if verr, ok := errors.Cause(err).(*core.ValidationError); ok && verr.Err == user.ErrUsernameExists {
			api.notify(ctx, "Registration failed", "Username already exists")
		}
		return err
	}

	usr, err := api.svc.SignUp(data)
	if err != nil {
		return errors.Wrap(err, "signing up")
	}
	api.notify(ctx, "Registration successful", "Your account has been created. You can now log in.")

	return ctx.JSON(http.StatusCreated, usr)
}

// logout clears both persisted session keys regardless of prior state;
// calling it twice is safe.
func (api *authApi) logout(ctx echo.Context) error {
	if err := api.sessions.Clear(ctx); err != nil {
		return errors.Wrap(err, "clearing session")
	}
	api.notify(ctx, "Logged out", "You have been successfully logged out")
	return ctx.Redirect(http.StatusFound, homePath)
}

func (api *authApi) notify(ctx echo.Context, title, description string) {
	if err := api.sessions.AddFlash(ctx, Notification{Title: title, Description: description}); err != nil {
		ctx.Logger().Errorf("queueing notification: %+v", err)
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.Username = core.CleanString(lr.Username)
	return validate.Struct(lr)
}
