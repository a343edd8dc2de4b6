package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"parasport/games-api/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRegister(t *testing.T) {
	a := newTestAPI(t)

	rec := do(t, a, http.MethodPost, "/register", `{"email":"a@b.com","password":"Xy12345!"}`, "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Same email again must conflict
	rec = do(t, a, http.MethodPost, "/register", `{"email":"a@b.com","password":"Xy12345!"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestUserRegister_BadPayload(t *testing.T) {
	a := newTestAPI(t)

	tests := []struct {
		name string
		body string
	}{
		{"no email", `{"password":"Xy12345!"}`},
		{"bad email", `{"email":"not-an-email","password":"Xy12345!"}`},
		{"short password", `{"email":"a@b.com","password":"short"}`},
		{"not json", `email=a@b.com`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, a, http.MethodPost, "/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUserLogin(t *testing.T) {
	a := newTestAPI(t)
	user, _ := seedUser(t, a, "tester@mytesting.com", "PlainTextPassword")

	rec := do(t, a, http.MethodPost, "/login", `{"email":"tester@mytesting.com","password":"PlainTextPassword"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		UserID uint   `json:"user_id"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, user.ID, body.UserID)
	require.NotEmpty(t, body.Token)

	// The returned token must decode back to the same user
	gotID, err := security.ParseAuthToken(body.Token, testAuth.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, gotID)
}

func TestUserLogin_MissingFields(t *testing.T) {
	a := newTestAPI(t)
	seedUser(t, a, "tester@mytesting.com", "PlainTextPassword")

	for _, body := range []string{
		`{"email":"tester@mytesting.com"}`,
		`{"password":"PlainTextPassword"}`,
		`{}`,
		``,
	} {
		rec := do(t, a, http.MethodPost, "/login", body, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "body %q", body)
	}
}

// A missing user and a wrong password must be indistinguishable to the
// caller, identical status and identical message
func TestUserLogin_GenericFailure(t *testing.T) {
	a := newTestAPI(t)
	seedUser(t, a, "tester@mytesting.com", "PlainTextPassword")

	type errBody struct {
		Error string `json:"error"`
	}

	recUnknown := do(t, a, http.MethodPost, "/login", `{"email":"nobody@example.com","password":"PlainTextPassword"}`, "")
	recWrongPw := do(t, a, http.MethodPost, "/login", `{"email":"tester@mytesting.com","password":"WrongPassword"}`, "")

	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, recWrongPw.Code)

	var b1, b2 errBody
	require.NoError(t, json.Unmarshal(recUnknown.Body.Bytes(), &b1))
	require.NoError(t, json.Unmarshal(recWrongPw.Body.Bytes(), &b2))
	assert.Equal(t, b1.Error, b2.Error)
}

func TestJWTGuard(t *testing.T) {
	a := newTestAPI(t)
	user, token := seedUser(t, a, "tester@mytesting.com", "PlainTextPassword")

	t.Run("no token", func(t *testing.T) {
		rec := do(t, a, http.MethodPost, "/regions", `{"NOC":"NEW","region":"A new region"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		rec := do(t, a, http.MethodPost, "/regions", `{"NOC":"NEW","region":"A new region"}`, "not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid")
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := security.MakeAuthToken(user.ID, testAuth.Secret, -time.Minute)
		require.NoError(t, err)

		rec := do(t, a, http.MethodPost, "/regions", `{"NOC":"NEW","region":"A new region"}`, expired)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "expired")
	})

	t.Run("valid token", func(t *testing.T) {
		rec := do(t, a, http.MethodPost, "/regions", `{"NOC":"NEW","region":"A new region"}`, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestValidate(t *testing.T) {
	a := newTestAPI(t)
	_, token := seedUser(t, a, "tester@mytesting.com", "PlainTextPassword")

	rec := do(t, a, http.MethodHead, "/validate", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, a, http.MethodHead, "/validate", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
