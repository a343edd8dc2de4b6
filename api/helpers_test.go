package api

import (
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"parasport/games-api/config"
	"parasport/games-api/db"
	"parasport/games-api/model"
	"parasport/games-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testAuth = &config.Auth{
	Secret:   []byte("unit-test-secret"),
	TokenTTL: time.Hour,
}

func newTestAPI(t *testing.T) *API {
	t.Helper()

	gin.SetMode(gin.TestMode)

	d, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	return NewRouter(d, testAuth)
}

// do runs one request against the router. A non-empty token goes into
// the Authorization header the way API clients send it.
func do(t *testing.T, a *API, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

// seedUser puts a user straight into the database and returns it with a
// valid token, skipping the register/login endpoints
func seedUser(t *testing.T, a *API, email, password string) (model.User, string) {
	t.Helper()

	hash, err := a.Argon.GenerateFromPassword(password)
	require.NoError(t, err)

	user := model.User{Email: email, PasswordHash: hash}
	require.NoError(t, a.DB.Create(&user).Error)

	token, err := security.MakeAuthToken(user.ID, testAuth.Secret, testAuth.TokenTTL)
	require.NoError(t, err)

	return user, token
}

func seedRegion(t *testing.T, a *API, noc, name string) {
	t.Helper()

	require.NoError(t, a.DB.Create(&model.Region{NOC: noc, Region: name}).Error)
}

func seedEvent(t *testing.T, a *API, noc string, year int) model.Event {
	t.Helper()

	e := model.Event{Type: "summer", Year: year, Country: "Italy", Host: "Rome", NOC: noc}
	require.NoError(t, a.DB.Create(&e).Error)
	return e
}
