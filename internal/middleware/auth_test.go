package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tealedge/portal/internal/domain"
	internal_jwt "github.com/tealedge/portal/internal/jwt"
)

const testSecret = "test-secret"

func newTestAuth() *Auth {
	return NewAuth(internal_jwt.New(testSecret, time.Hour), false)
}

func tokenFor(t *testing.T, account domain.Account) string {
	t.Helper()
	token, err := internal_jwt.New(testSecret, time.Hour).NewToken(account)
	require.NoError(t, err)
	return token
}

func echoCaller() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if account := GetAccountFromContext(r); account != nil {
			w.Write([]byte(account.Email))
			return
		}
		w.Write([]byte("anonymous"))
	})
}

func TestAuth_NeedAuth(t *testing.T) {
	mw := newTestAuth().NeedAuth()(echoCaller())
	alice := domain.Account{Id: uuid.New(), Name: "Alice", Email: "alice@x.com", Role: domain.RoleStudent}

	t.Run("no token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: "not-a-jwt"})
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		token, err := internal_jwt.New("other-secret", time.Hour).NewToken(alice)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := internal_jwt.New(testSecret, -time.Minute).NewToken(alice)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid cookie token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: tokenFor(t, alice)})
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "alice@x.com", rr.Body.String())
	})

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, alice))
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "alice@x.com", rr.Body.String())
	})
}

func TestAuth_AdminOnly(t *testing.T) {
	mw := newTestAuth().AdminOnly()(echoCaller())

	t.Run("student is forbidden", func(t *testing.T) {
		alice := domain.Account{Id: uuid.New(), Name: "Alice", Email: "alice@x.com", Role: domain.RoleStudent}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: tokenFor(t, alice)})
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		root := domain.Account{Id: uuid.New(), Name: "Root", Email: "root@tealedge.com", Role: domain.RoleAdmin}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: tokenFor(t, root)})
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "root@tealedge.com", rr.Body.String())
	})
}

func TestAuth_OptionalAuth(t *testing.T) {
	mw := newTestAuth().OptionalAuth()(echoCaller())

	t.Run("anonymous passes through", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "anonymous", rr.Body.String())
	})

	t.Run("valid token populates the caller", func(t *testing.T) {
		alice := domain.Account{Id: uuid.New(), Name: "Alice", Email: "alice@x.com", Role: domain.RoleStudent}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: tokenFor(t, alice)})
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)
		assert.Equal(t, "alice@x.com", rr.Body.String())
	})

	t.Run("bad token degrades to anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: "junk"})
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "anonymous", rr.Body.String())
	})
}
