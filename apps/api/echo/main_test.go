package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/happyclass/apps/api/echo"
	"github.com/trezcool/happyclass/core"
	"github.com/trezcool/happyclass/core/home"
	"github.com/trezcool/happyclass/core/portal"
	"github.com/trezcool/happyclass/core/session"
	"github.com/trezcool/happyclass/storage/database/inmem"
	"github.com/trezcool/happyclass/storage/seed"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type testLogger struct{ errors []string }

func (l *testLogger) Debug(string, ...interface{})       {}
func (l *testLogger) Info(string, ...interface{})        {}
func (l *testLogger) Warn(string, ...interface{})        {}
func (l *testLogger) Error(msg string, _ ...interface{}) { l.errors = append(l.errors, msg) }
func (l *testLogger) Fatal(string, ...interface{})       {}

type testApp struct {
	*Server
	conf   *core.Config
	svc    *portal.Service
	logger *testLogger
}

// setup returns a server whose logins always pick role. Simulated delays are disabled.
func setup(t *testing.T, role session.Role) testApp {
	t.Helper()
	return setupWithOptions(t, role, nil)
}

// setupWithOptions is setup with the portal options adjusted by opt.
func setupWithOptions(t *testing.T, role session.Role, opt func(*portal.Options)) testApp {
	t.Helper()

	conf := &core.Config{
		AppName:   "快乐班级",
		TestMode:  true,
		SecretKey: "test-secret",
		Server: core.ServerConfig{
			DisableReqLogs:       true,
			TokenExpirationDelta: time.Hour,
		},
	}

	s, err := seed.Default()
	require.NoError(t, err)
	db, err := inmemdb.Open()
	require.NoError(t, err)
	opts := portal.Options{
		RolePicker:          home.FixedRole(role),
		GalleryInitialCount: 3,
		GalleryPageSize:     3,
	}
	if opt != nil {
		opt(&opts)
	}
	svc := portal.NewService(inmemdb.NewSessionRepository(db), s, opts)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)

	logger := new(testLogger)
	srv := NewServer(conf, nil, &Deps{
		Logger:     logger,
		Validate:   validate,
		Translator: translator,
		SessionSvc: svc,
	})
	return testApp{Server: srv, conf: conf, svc: svc, logger: logger}
}

// newSession opens a session and returns its token.
func (app testApp) newSession(t *testing.T) string {
	t.Helper()
	req, rec := newRequest(http.MethodPost, "/v1/sessions")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// login opens a session and logs it in.
func (app testApp) login(t *testing.T) string {
	t.Helper()
	token := app.newSession(t)
	req, rec := newAuthRequest(http.MethodPost, "/v1/home/login", token, marchallObj(t, LoginRequest{Code: "123456"}))
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return token
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runTests(t *testing.T, app testApp, tests []httpTest) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}
