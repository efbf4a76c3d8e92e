package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/securecookie"

	"github.com/trezcool/ratiba/core"
	"github.com/trezcool/ratiba/core/course"
	"github.com/trezcool/ratiba/core/schedule"
	"github.com/trezcool/ratiba/core/user"
	inmemdb "github.com/trezcool/ratiba/storage/database/inmem"
)

var testSecretKey = "test-secret"

func testConfig() *core.Config {
	return &core.Config{
		TestMode:      true,
		Env:           "TEST",
		AppName:       "Ratiba",
		SecretKey:     testSecretKey,
		SessionName:   "ratiba_session",
		SessionMaxAge: time.Hour,
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func newTestTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

func newTestServer(t *testing.T) *server {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("newTestServer() failed: %v", err)
	}
	if err = inmemdb.Seed(db); err != nil {
		t.Fatalf("newTestServer() failed: %v", err)
	}

	validate := validator.New()
	translator := newTestTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	schedule.InitValidators(validate, translator)

	entryRepo := inmemdb.NewEntryRepository(db)
	courseRepo := inmemdb.NewCourseRepository(db)

	srv := NewServer(ServerDeps{
		Conf:           testConfig(),
		Logger:         nopLogger{},
		UserSvc:        user.NewService(inmemdb.NewUserRepository(db)),
		CourseSvc:      course.NewService(courseRepo, entryRepo),
		ScheduleSvc:    schedule.NewService(entryRepo, courseRepo),
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
	})
	return srv.(*server)
}

func do(srv *server, method, path string, cookies []*http.Cookie, data ...[]byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

// sessionCookie returns the last session cookie set on the response, if any.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == testConfig().SessionName {
			found = c
		}
	}
	return found
}

func login(t *testing.T, srv *server, username, password string) []*http.Cookie {
	rec := do(srv, http.MethodPost, "/login", nil, marchallObj(t, LoginRequest{Username: username, Password: password}))
	if rec.Code != http.StatusOK {
		t.Fatalf("login(%s) failed: code = %v; body = %v", username, rec.Code, rec.Body.String())
	}
	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatalf("login(%s) failed: no session cookie set", username)
	}
	return []*http.Cookie{cookie}
}

// decodeSessionValues decodes the persisted session key-value pairs.
func decodeSessionValues(t *testing.T, cookie *http.Cookie) map[interface{}]interface{} {
	codecs := securecookie.CodecsFromPairs([]byte(testSecretKey))
	vals := make(map[interface{}]interface{})
	if err := securecookie.DecodeMulti(testConfig().SessionName, cookie.Value, &vals, codecs...); err != nil {
		t.Fatalf("decodeSessionValues() failed: %v", err)
	}
	return vals
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func unmarchallObj(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("unmarchallObj() failed: %v; body = %v", err, rec.Body.String())
	}
}
