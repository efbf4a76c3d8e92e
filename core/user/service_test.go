package user_test

import (
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/user"
	inmemdb "github.com/trezcool/ratiba/storage/database/inmem"
)

func newTestService(t *testing.T) *user.Service {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("newTestService() failed: %v", err)
	}
	if err = inmemdb.Seed(db); err != nil {
		t.Fatalf("newTestService() failed: %v", err)
	}
	return user.NewService(inmemdb.NewUserRepository(db))
}

func TestService_Authenticate(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "admin", username: "admin", password: "password"},
		{name: "student", username: "student", password: "password"},
		{name: "surrounding whitespace is trimmed", username: " admin ", password: "password"},
		{name: "unknown username", username: "nobody", password: "password", wantErr: user.ErrAuthenticationFailed},
		{name: "wrong password", username: "admin", password: "hunter2", wantErr: user.ErrAuthenticationFailed},
		{name: "username is case-sensitive", username: "Admin", password: "password", wantErr: user.ErrAuthenticationFailed},
		{name: "empty pair", wantErr: user.ErrAuthenticationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usr, err := svc.Authenticate(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Empty(t, usr)
				return
			}
			if assert.NoError(t, err) {
				assert.Equal(t, core.CleanString(tt.username), usr.Username)
			}
		})
	}
}

func TestService_SignUp(t *testing.T) {
	svc := newTestService(t)

	usr, err := svc.SignUp(user.NewUser{
		Username:        "mwalimu",
		Password:        "secret",
		PasswordConfirm: "secret",
		Role:            user.RoleStudent,
	})
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 3, usr.ID)
	assert.True(t, usr.IsStudent())
	assert.NoError(t, usr.CheckPassword("secret"))
	assert.Error(t, usr.CheckPassword("wrong"))

	// the new credential pair authenticates
	_, err = svc.Authenticate("mwalimu", "secret")
	assert.NoError(t, err)
}

func TestNewUser_Validate(t *testing.T) {
	svc := newTestService(t)

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	t.Run("duplicate username", func(t *testing.T) {
		nu := user.NewUser{Username: "admin", Password: "pwd", PasswordConfirm: "pwd", Role: user.RoleStudent}
		err := nu.Validate(validate, svc)
		if vErr, ok := err.(*core.ValidationError); assert.True(t, ok, err) {
			assert.Equal(t, []core.FieldError{{Field: "username", Error: "username already exists"}}, vErr.Fields)
		}
	})

	t.Run("case differs so no duplicate", func(t *testing.T) {
		nu := user.NewUser{Username: "Admin", Password: "pwd", PasswordConfirm: "pwd", Role: user.RoleStudent}
		assert.NoError(t, nu.Validate(validate, svc))
	})

	t.Run("unknown role", func(t *testing.T) {
		nu := user.NewUser{Username: "teacher1", Password: "pwd", PasswordConfirm: "pwd", Role: "teacher"}
		err := nu.Validate(validate, svc)
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "userrole")
		}
	})

	t.Run("password confirmation mismatch", func(t *testing.T) {
		nu := user.NewUser{Username: "mgeni", Password: "pwd", PasswordConfirm: "other", Role: user.RoleStudent}
		assert.Error(t, nu.Validate(validate, svc))
	})
}
